package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/workboard/workspace/pkg/apiclient"
	"github.com/workboard/workspace/pkg/pending"
	"github.com/workboard/workspace/pkg/session"
)

// NoteStore is the entity state manager for notes. Unlike tasks, note edits
// are not optimistic: title/body edits are infrequent and losing typed text
// on a failed write costs more than the extra latency.
type NoteStore struct {
	mu   sync.Mutex
	gw   NoteGateway
	sess *session.Session
	log  zerolog.Logger

	notes      []apiclient.Note
	inFlight   map[string]struct{}
	refreshSeq uint64

	confirm *pending.Machine
}

// NoteStoreOption customises a NoteStore.
type NoteStoreOption func(*NoteStore)

// WithNoteDeleteWindow overrides the two-tap confirmation window.
func WithNoteDeleteWindow(window time.Duration) NoteStoreOption {
	return func(s *NoteStore) { s.confirm = pending.New(window) }
}

// NewNoteStore creates a NoteStore bound to a session. The store drops its
// collection when the session logs out.
func NewNoteStore(gw NoteGateway, sess *session.Session, log zerolog.Logger, opts ...NoteStoreOption) *NoteStore {
	s := &NoteStore{
		gw:       gw,
		sess:     sess,
		log:      log,
		inFlight: make(map[string]struct{}),
		confirm:  pending.New(pending.DefaultWindow),
	}
	for _, opt := range opts {
		opt(s)
	}
	sess.OnLogout(s.reset)
	return s
}

// Notes returns a snapshot of the collection in server order.
func (s *NoteStore) Notes() []apiclient.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]apiclient.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Settled reports whether no operation is in flight.
func (s *NoteStore) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inFlight) == 0
}

// Refresh fetches the full collection and replaces the local one verbatim.
// Overlapping refreshes apply only the most recently issued response.
func (s *NoteStore) Refresh(ctx context.Context) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.refreshSeq++
	seq := s.refreshSeq
	op := s.beginOp()
	s.mu.Unlock()

	notes, err := s.gw.ListNotes(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return err
	}
	if seq != s.refreshSeq {
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale note refresh")
		return nil
	}
	s.notes = notes
	return nil
}

// Create asks the server for a new note and appends the server-returned
// record. No optimistic insert; a failed create leaves the collection
// untouched.
func (s *NoteStore) Create(ctx context.Context, title, body string) (apiclient.Note, error) {
	userID, ok := s.sess.UserID()
	if !ok {
		return apiclient.Note{}, nil
	}

	s.mu.Lock()
	op := s.beginOp()
	s.mu.Unlock()

	note, err := s.gw.CreateNote(ctx, userID, title, body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return apiclient.Note{}, err
	}
	s.notes = append(s.notes, note)
	return note, nil
}

// Update applies a title/body edit. Local state changes only after the
// server confirms.
func (s *NoteStore) Update(ctx context.Context, noteID int64, patch apiclient.NotePatch) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	op := s.beginOp()
	s.mu.Unlock()

	updated, err := s.gw.UpdateNote(ctx, userID, noteID, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return err
	}
	if i := indexOf(s.notes, noteID); i >= 0 {
		s.notes[i] = updated
	}
	return nil
}

// RequestDelete records a delete tap; see TaskStore.RequestDelete.
func (s *NoteStore) RequestDelete(ctx context.Context, noteID int64) (bool, error) {
	if _, ok := s.sess.UserID(); !ok {
		return false, nil
	}
	if !s.confirm.RequestDelete(noteID) {
		return false, nil
	}
	return true, s.Remove(ctx, noteID)
}

// CancelDelete disarms a pending confirmation.
func (s *NoteStore) CancelDelete() {
	s.confirm.Cancel()
}

// PendingDelete returns the note id awaiting confirmation, if any.
func (s *NoteStore) PendingDelete() (int64, bool) {
	return s.confirm.Pending()
}

// Remove optimistically deletes the note locally, re-inserting it at its
// original index if the server call fails.
func (s *NoteStore) Remove(ctx context.Context, noteID int64) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	i := indexOf(s.notes, noteID)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.notes[i]
	s.notes = removeAt(s.notes, i)
	op := s.beginOp()
	s.mu.Unlock()

	_, err := s.gw.DeleteNote(ctx, userID, noteID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		s.notes = insertAt(s.notes, i, removed)
		return err
	}
	return nil
}

// reset drops all local state. Wired to session logout.
func (s *NoteStore) reset() {
	s.confirm.Cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = nil
	s.refreshSeq++
}

func (s *NoteStore) beginOp() string {
	id := newOpID()
	s.inFlight[id] = struct{}{}
	return id
}

func (s *NoteStore) endOp(id string) {
	delete(s.inFlight, id)
}
