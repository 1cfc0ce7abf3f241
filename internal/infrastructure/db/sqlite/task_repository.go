package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/workboard/workspace/internal/core/domain"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	var recs []taskRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]domain.Task, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *taskToDomain(rec))
	}
	return out, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	rec := taskRecord{
		Title:     task.Title,
		Completed: task.Completed,
		UserID:    task.UserID,
		DueDate:   task.DueDate,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return taskToDomain(rec), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	var rec taskRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ? AND user_id = ?", taskID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return taskToDomain(rec), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	rec := taskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		UserID:    task.UserID,
		DueDate:   task.DueDate,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("title", "completed", "due_date", "updated_at").
		Updates(&rec)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return r.FindByID(ctx, task.UserID, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	deleted, err := r.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&taskRecord{}, "id = ? AND user_id = ?", taskID, userID)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return deleted, nil
}

func taskToDomain(rec taskRecord) *domain.Task {
	return &domain.Task{
		ID:        rec.ID,
		Title:     rec.Title,
		Completed: rec.Completed,
		UserID:    rec.UserID,
		DueDate:   rec.DueDate,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
