package ports

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every lookup is
// scoped by the owning user: an id belonging to a different user behaves
// exactly like an absent one.
type TaskRepository interface {
	// ListByUser returns the user's tasks in stable insertion order.
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	// Create persists the task and assigns a server-side monotonic ID.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete removes the task and returns the deleted record.
	Delete(ctx context.Context, userID, taskID int64) (*domain.Task, error)
}
