package jsonfile

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) ListByUser(_ context.Context, userID int64) ([]domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]domain.Task, 0)
	for _, t := range r.store.data.Tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *task
	stored.ID = r.store.data.NextTaskID
	r.store.data.NextTaskID++
	r.store.data.Tasks = append(r.store.data.Tasks, stored)

	if err := r.store.save(); err != nil {
		r.store.data.Tasks = r.store.data.Tasks[:len(r.store.data.Tasks)-1]
		r.store.data.NextTaskID--
		return nil, err
	}
	return &stored, nil
}

func (r *TaskRepository) FindByID(_ context.Context, userID, taskID int64) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := r.findIndex(userID, taskID); i >= 0 {
		t := r.store.data.Tasks[i]
		return &t, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.findIndex(task.UserID, task.ID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	prev := r.store.data.Tasks[i]
	r.store.data.Tasks[i] = *task

	if err := r.store.save(); err != nil {
		r.store.data.Tasks[i] = prev
		return nil, err
	}
	updated := r.store.data.Tasks[i]
	return &updated, nil
}

func (r *TaskRepository) Delete(_ context.Context, userID, taskID int64) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.findIndex(userID, taskID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	deleted := r.store.data.Tasks[i]
	r.store.data.Tasks = append(r.store.data.Tasks[:i], r.store.data.Tasks[i+1:]...)

	if err := r.store.save(); err != nil {
		rest := append([]domain.Task{deleted}, r.store.data.Tasks[i:]...)
		r.store.data.Tasks = append(r.store.data.Tasks[:i], rest...)
		return nil, err
	}
	return &deleted, nil
}

// findIndex returns the position of the task owned by userID, or -1.
// Callers must hold the store mutex.
func (r *TaskRepository) findIndex(userID, taskID int64) int {
	for i, t := range r.store.data.Tasks {
		if t.ID == taskID && t.UserID == userID {
			return i
		}
	}
	return -1
}
