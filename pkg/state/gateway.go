package state

import (
	"context"

	"github.com/workboard/workspace/pkg/apiclient"
)

// TaskGateway is the remote surface TaskStore depends on. *apiclient.Client
// satisfies it; tests substitute an in-memory fake.
type TaskGateway interface {
	ListTasks(ctx context.Context, userID int64) ([]apiclient.Task, error)
	CreateTask(ctx context.Context, userID int64, title, dueDate string) (apiclient.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, patch apiclient.TaskPatch) (apiclient.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) (apiclient.Task, error)
}

// NoteGateway is the remote surface NoteStore depends on.
type NoteGateway interface {
	ListNotes(ctx context.Context, userID int64) ([]apiclient.Note, error)
	CreateNote(ctx context.Context, userID int64, title, body string) (apiclient.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, patch apiclient.NotePatch) (apiclient.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) (apiclient.Note, error)
}
