package state

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workboard/workspace/pkg/apiclient"
	"github.com/workboard/workspace/pkg/session"
)

// stubAuth signs any credentials in as a fixed user.
type stubAuth struct {
	user apiclient.User
}

func (a *stubAuth) Login(_ context.Context, _, _ string) (apiclient.User, error) {
	return a.user, nil
}

func (a *stubAuth) Register(_ context.Context, _, _, _, _ string) (apiclient.User, error) {
	return a.user, nil
}

// signedInSession returns a session with user id 1 already signed in.
func signedInSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(&stubAuth{user: apiclient.User{ID: 1, Username: "alice", Name: "Alice"}})
	if _, err := sess.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return sess
}

// fakeTaskGateway is an in-memory task backend with per-method error
// injection. Each list/update call can be held open via the gate channels to
// simulate in-flight requests.
type fakeTaskGateway struct {
	mu     sync.Mutex
	tasks  []apiclient.Task
	nextID int64

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	updateCalls int

	// When non-nil, every ListTasks call appends a release channel here and
	// blocks until the test sends the response through it.
	listGates []chan []apiclient.Task
	listReady chan struct{}

	// When non-nil, every UpdateTask call signals updateStarted and then
	// blocks until the test sends on updateGate.
	updateStarted chan struct{}
	updateGate    chan struct{}
}

func newFakeTaskGateway() *fakeTaskGateway {
	return &fakeTaskGateway{nextID: 1}
}

func (g *fakeTaskGateway) seed(tasks ...apiclient.Task) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range tasks {
		if t.ID >= g.nextID {
			g.nextID = t.ID + 1
		}
		g.tasks = append(g.tasks, t)
	}
}

func (g *fakeTaskGateway) snapshot() []apiclient.Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]apiclient.Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

func (g *fakeTaskGateway) ListTasks(_ context.Context, userID int64) ([]apiclient.Task, error) {
	g.mu.Lock()
	g.listCalls++
	if g.listErr != nil {
		err := g.listErr
		g.mu.Unlock()
		return nil, err
	}

	if g.listReady != nil {
		gate := make(chan []apiclient.Task)
		g.listGates = append(g.listGates, gate)
		ready := g.listReady
		g.mu.Unlock()
		ready <- struct{}{}
		return <-gate, nil
	}

	out := make([]apiclient.Task, 0)
	for _, t := range g.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	g.mu.Unlock()
	return out, nil
}

func (g *fakeTaskGateway) CreateTask(_ context.Context, userID int64, title, dueDate string) (apiclient.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return apiclient.Task{}, g.createErr
	}
	task := apiclient.Task{ID: g.nextID, Title: title, UserID: userID, DueDate: dueDate}
	g.nextID++
	g.tasks = append(g.tasks, task)
	return task, nil
}

func (g *fakeTaskGateway) UpdateTask(_ context.Context, userID, taskID int64, patch apiclient.TaskPatch) (apiclient.Task, error) {
	g.mu.Lock()
	g.updateCalls++
	started := g.updateStarted
	gate := g.updateGate
	g.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.updateErr != nil {
		return apiclient.Task{}, g.updateErr
	}
	for i := range g.tasks {
		if g.tasks[i].ID == taskID && g.tasks[i].UserID == userID {
			if patch.Title != nil {
				g.tasks[i].Title = *patch.Title
			}
			if patch.Completed != nil {
				g.tasks[i].Completed = *patch.Completed
			}
			if patch.DueDate != nil {
				g.tasks[i].DueDate = *patch.DueDate
			}
			return g.tasks[i], nil
		}
	}
	return apiclient.Task{}, &apiclient.Error{Kind: apiclient.KindNotFound, Message: "Task not found", StatusCode: 404}
}

func (g *fakeTaskGateway) DeleteTask(_ context.Context, userID, taskID int64) (apiclient.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.deleteErr != nil {
		return apiclient.Task{}, g.deleteErr
	}
	for i, t := range g.tasks {
		if t.ID == taskID && t.UserID == userID {
			g.tasks = append(g.tasks[:i], g.tasks[i+1:]...)
			return t, nil
		}
	}
	return apiclient.Task{}, &apiclient.Error{Kind: apiclient.KindNotFound, Message: "Task not found", StatusCode: 404}
}

// fakeNoteGateway mirrors fakeTaskGateway for notes.
type fakeNoteGateway struct {
	mu     sync.Mutex
	notes  []apiclient.Note
	nextID int64

	createErr error
	updateErr error
	deleteErr error

	updateCalls int
}

func newFakeNoteGateway() *fakeNoteGateway {
	return &fakeNoteGateway{nextID: 1}
}

func (g *fakeNoteGateway) snapshot() []apiclient.Note {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]apiclient.Note, len(g.notes))
	copy(out, g.notes)
	return out
}

func (g *fakeNoteGateway) ListNotes(_ context.Context, userID int64) ([]apiclient.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]apiclient.Note, 0)
	for _, n := range g.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (g *fakeNoteGateway) CreateNote(_ context.Context, userID int64, title, body string) (apiclient.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return apiclient.Note{}, g.createErr
	}
	note := apiclient.Note{ID: g.nextID, Title: title, Body: body, UserID: userID}
	g.nextID++
	g.notes = append(g.notes, note)
	return note, nil
}

func (g *fakeNoteGateway) UpdateNote(_ context.Context, userID, noteID int64, patch apiclient.NotePatch) (apiclient.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	if g.updateErr != nil {
		return apiclient.Note{}, g.updateErr
	}
	for i := range g.notes {
		if g.notes[i].ID == noteID && g.notes[i].UserID == userID {
			if patch.Title != nil {
				g.notes[i].Title = *patch.Title
			}
			if patch.Body != nil {
				g.notes[i].Body = *patch.Body
			}
			return g.notes[i], nil
		}
	}
	return apiclient.Note{}, &apiclient.Error{Kind: apiclient.KindNotFound, Message: "Note not found", StatusCode: 404}
}

func (g *fakeNoteGateway) DeleteNote(_ context.Context, userID, noteID int64) (apiclient.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.deleteErr != nil {
		return apiclient.Note{}, g.deleteErr
	}
	for i, n := range g.notes {
		if n.ID == noteID && n.UserID == userID {
			g.notes = append(g.notes[:i], g.notes[i+1:]...)
			return n, nil
		}
	}
	return apiclient.Note{}, &apiclient.Error{Kind: apiclient.KindNotFound, Message: "Note not found", StatusCode: 404}
}

func nopLogger() zerolog.Logger { return zerolog.Nop() }
