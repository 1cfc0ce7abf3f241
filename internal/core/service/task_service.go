package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/workboard/workspace/internal/api/metrics"
	"github.com/workboard/workspace/internal/core/domain"
	"github.com/workboard/workspace/internal/core/ports"
)

type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:     title,
		Completed: false,
		UserID:    input.UserID,
		DueDate:   input.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().Int64("task_id", created.ID).Int64("user_id", created.UserID).Msg("task created")
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		task.Title = title
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("task_id", input.TaskID).Msg("failed to update task")
		return nil, err
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	deleted, err := s.repo.Delete(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	metrics.TasksDeletedTotal.Inc()
	s.logger.Info().Int64("task_id", taskID).Int64("user_id", userID).Msg("task deleted")
	return deleted, nil
}
