package ports

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	UserID  int64
	Title   string
	DueDate string // optional ISO-8601 instant, stored verbatim
}

// UpdateTaskInput carries a partial task update. Nil fields are untouched.
type UpdateTaskInput struct {
	UserID    int64
	TaskID    int64
	Title     *string
	Completed *bool
	DueDate   *string
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	// DeleteTask removes a task and returns the deleted record.
	DeleteTask(ctx context.Context, userID, taskID int64) (*domain.Task, error)
}
