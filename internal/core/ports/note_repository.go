package ports

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

// NoteRepository defines persistence operations for notes. Ownership rules
// mirror TaskRepository.
type NoteRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByID(ctx context.Context, userID, noteID int64) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID int64) (*domain.Note, error)
}
