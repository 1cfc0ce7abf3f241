package jsonfile

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) *NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) ListByUser(_ context.Context, userID int64) ([]domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]domain.Note, 0)
	for _, n := range r.store.data.Notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NoteRepository) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *note
	stored.ID = r.store.data.NextNoteID
	r.store.data.NextNoteID++
	r.store.data.Notes = append(r.store.data.Notes, stored)

	if err := r.store.save(); err != nil {
		r.store.data.Notes = r.store.data.Notes[:len(r.store.data.Notes)-1]
		r.store.data.NextNoteID--
		return nil, err
	}
	return &stored, nil
}

func (r *NoteRepository) FindByID(_ context.Context, userID, noteID int64) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := r.findIndex(userID, noteID); i >= 0 {
		n := r.store.data.Notes[i]
		return &n, nil
	}
	return nil, domain.ErrNoteNotFound
}

func (r *NoteRepository) Update(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.findIndex(note.UserID, note.ID)
	if i < 0 {
		return nil, domain.ErrNoteNotFound
	}

	prev := r.store.data.Notes[i]
	r.store.data.Notes[i] = *note

	if err := r.store.save(); err != nil {
		r.store.data.Notes[i] = prev
		return nil, err
	}
	updated := r.store.data.Notes[i]
	return &updated, nil
}

func (r *NoteRepository) Delete(_ context.Context, userID, noteID int64) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.findIndex(userID, noteID)
	if i < 0 {
		return nil, domain.ErrNoteNotFound
	}

	deleted := r.store.data.Notes[i]
	r.store.data.Notes = append(r.store.data.Notes[:i], r.store.data.Notes[i+1:]...)

	if err := r.store.save(); err != nil {
		rest := append([]domain.Note{deleted}, r.store.data.Notes[i:]...)
		r.store.data.Notes = append(r.store.data.Notes[:i], rest...)
		return nil, err
	}
	return &deleted, nil
}

// findIndex returns the position of the note owned by userID, or -1.
// Callers must hold the store mutex.
func (r *NoteRepository) findIndex(userID, noteID int64) int {
	for i, n := range r.store.data.Notes {
		if n.ID == noteID && n.UserID == userID {
			return i
		}
	}
	return -1
}
