package ports

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

// CreateNoteInput carries the fields accepted when creating a note.
type CreateNoteInput struct {
	UserID int64
	Title  string
	Body   string
}

// UpdateNoteInput carries a partial note update. Nil fields are untouched.
type UpdateNoteInput struct {
	UserID int64
	NoteID int64
	Title  *string
	Body   *string
}

// NoteService defines use-case operations for notes.
type NoteService interface {
	ListNotes(ctx context.Context, userID int64) ([]domain.Note, error)
	CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) (*domain.Note, error)
}
