// Package state holds the client-side collections for the signed-in user
// and keeps them consistent with the remote store: optimistic mutations
// reconcile with server responses or roll back on failure, and once no
// operation is in flight the local collection matches what the server would
// return.
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

// toggleState tracks an in-flight completion toggle for one task. Presence
// in the map means a call is outstanding; intended is the last value the
// user asked for and may be rewritten while the call is in flight.
type toggleState struct {
	intended bool
}

// TaskStore is the entity state manager for tasks.
type TaskStore struct {
	mu   sync.Mutex
	gw   TaskGateway
	sess *session.Session
	log  zerolog.Logger

	tasks      []apiclient.Task
	inFlight   map[string]struct{}
	toggles    map[int64]*toggleState
	refreshSeq uint64

	confirm *pending.Machine
}

// TaskStoreOption customises a TaskStore.
type TaskStoreOption func(*TaskStore)

// WithTaskDeleteWindow overrides the two-tap confirmation window.
func WithTaskDeleteWindow(window time.Duration) TaskStoreOption {
	return func(s *TaskStore) { s.confirm = pending.New(window) }
}

// NewTaskStore creates a TaskStore bound to a session. The store drops its
// collection when the session logs out.
func NewTaskStore(gw TaskGateway, sess *session.Session, log zerolog.Logger, opts ...TaskStoreOption) *TaskStore {
	s := &TaskStore{
		gw:       gw,
		sess:     sess,
		log:      log,
		inFlight: make(map[string]struct{}),
		toggles:  make(map[int64]*toggleState),
		confirm:  pending.New(pending.DefaultWindow),
	}
	for _, opt := range opts {
		opt(s)
	}
	sess.OnLogout(s.reset)
	return s
}

// Tasks returns a snapshot of the collection in server order.
func (s *TaskStore) Tasks() []apiclient.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]apiclient.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Settled reports whether no operation is in flight, i.e. the collection is
// guaranteed consistent with the remote store.
func (s *TaskStore) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inFlight) == 0
}

// Refresh fetches the full collection and replaces the local one verbatim.
// On failure the collection is left unchanged. When refreshes overlap, only
// the response of the most recently issued one is applied; stale responses
// are discarded by sequence number.
func (s *TaskStore) Refresh(ctx context.Context) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.refreshSeq++
	seq := s.refreshSeq
	op := s.beginOp()
	s.mu.Unlock()

	tasks, err := s.gw.ListTasks(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return err
	}
	if seq != s.refreshSeq {
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale task refresh")
		return nil
	}
	s.tasks = tasks
	return nil
}

// Create asks the server for a new task and appends the server-returned
// record. There is no optimistic insert: the record only exists locally once
// it has a server-assigned id, so a failed create leaves the collection
// untouched and the caller's typed input intact for retry.
func (s *TaskStore) Create(ctx context.Context, title, dueDate string) (apiclient.Task, error) {
	userID, ok := s.sess.UserID()
	if !ok {
		return apiclient.Task{}, nil
	}

	s.mu.Lock()
	op := s.beginOp()
	s.mu.Unlock()

	task, err := s.gw.CreateTask(ctx, userID, title, dueDate)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return apiclient.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// SetCompleted applies the new completion value locally before the network
// call resolves, reverting on failure. Concurrent toggles on the same id are
// coalesced: while a call is in flight only the intended value is recorded,
// and at most one follow-up call is issued if the settled state still
// differs from the latest intent.
func (s *TaskStore) SetCompleted(ctx context.Context, taskID int64, completed bool) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	i := indexOf(s.tasks, taskID)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	prev := s.tasks[i].Completed
	s.tasks[i].Completed = completed // optimistic

	if ts, inFlight := s.toggles[taskID]; inFlight {
		// A call is already outstanding; it will observe the new intent when
		// it settles.
		ts.intended = completed
		s.mu.Unlock()
		return nil
	}

	ts := &toggleState{intended: completed}
	s.toggles[taskID] = ts
	op := s.beginOp()
	s.mu.Unlock()

	value := completed
	for {
		patch := apiclient.TaskPatch{Completed: &value}
		updated, err := s.gw.UpdateTask(ctx, userID, taskID, patch)

		s.mu.Lock()
		if err != nil {
			if j := indexOf(s.tasks, taskID); j >= 0 {
				s.tasks[j].Completed = prev
			}
			delete(s.toggles, taskID)
			s.endOp(op)
			s.mu.Unlock()
			return err
		}

		if ts.intended == updated.Completed {
			// Settled at the latest intent: adopt the server record.
			if j := indexOf(s.tasks, taskID); j >= 0 {
				s.tasks[j] = updated
			}
			delete(s.toggles, taskID)
			s.endOp(op)
			s.mu.Unlock()
			return nil
		}

		// Intent changed while the call was in flight: reconcile everything
		// except the completion flag, then converge with one more call.
		if j := indexOf(s.tasks, taskID); j >= 0 {
			s.tasks[j] = updated
			s.tasks[j].Completed = ts.intended
		}
		prev = updated.Completed
		value = ts.intended
		s.mu.Unlock()
	}
}

// Update applies a partial edit without optimism: local state changes only
// after the server confirms.
func (s *TaskStore) Update(ctx context.Context, taskID int64, patch apiclient.TaskPatch) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	op := s.beginOp()
	s.mu.Unlock()

	updated, err := s.gw.UpdateTask(ctx, userID, taskID, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		return err
	}
	if i := indexOf(s.tasks, taskID); i >= 0 {
		s.tasks[i] = updated
	}
	return nil
}

// RequestDelete records a delete tap. The first tap arms the confirmation
// window; the second tap on the same id confirms and performs the removal.
// The returned flag reports whether a deletion was actually attempted.
func (s *TaskStore) RequestDelete(ctx context.Context, taskID int64) (bool, error) {
	if _, ok := s.sess.UserID(); !ok {
		return false, nil
	}
	if !s.confirm.RequestDelete(taskID) {
		return false, nil
	}
	return true, s.Remove(ctx, taskID)
}

// CancelDelete disarms a pending confirmation.
func (s *TaskStore) CancelDelete() {
	s.confirm.Cancel()
}

// PendingDelete returns the task id awaiting confirmation, if any.
func (s *TaskStore) PendingDelete() (int64, bool) {
	return s.confirm.Pending()
}

// Remove optimistically deletes the task from the local collection, then
// confirms with the server. On failure the record is re-inserted at its
// original index.
func (s *TaskStore) Remove(ctx context.Context, taskID int64) error {
	userID, ok := s.sess.UserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	i := indexOf(s.tasks, taskID)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.tasks[i]
	s.tasks = removeAt(s.tasks, i)
	op := s.beginOp()
	s.mu.Unlock()

	_, err := s.gw.DeleteTask(ctx, userID, taskID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOp(op)
	if err != nil {
		s.tasks = insertAt(s.tasks, i, removed)
		return err
	}
	return nil
}

// reset drops all local state. Wired to session logout.
func (s *TaskStore) reset() {
	s.confirm.Cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.toggles = make(map[int64]*toggleState)
	s.refreshSeq++
}

// beginOp registers an in-flight operation id. Callers hold s.mu.
func (s *TaskStore) beginOp() string {
	id := newOpID()
	s.inFlight[id] = struct{}{}
	return id
}

// endOp clears an in-flight operation id. Callers hold s.mu.
func (s *TaskStore) endOp(id string) {
	delete(s.inFlight, id)
}
