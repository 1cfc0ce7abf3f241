package apiclient

import "time"

// User identifies the signed-in account. All task and note operations are
// scoped by its ID.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
}

// Task is a to-do item as it travels on the wire.
//
// DueDate is the raw ISO-8601 string: due timestamps may omit a UTC offset,
// in which case their calendar day depends on the viewer's location. The
// view package owns that interpretation.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"userId"`
	DueDate   string    `json:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key returns the task's identity for collection lookups.
func (t Task) Key() int64 { return t.ID }

// Note is a free-form text record as it travels on the wire.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key returns the note's identity for collection lookups.
func (n Note) Key() int64 { return n.ID }

// TaskPatch is a partial task update. Nil fields are left untouched by the
// server.
type TaskPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	DueDate   *string `json:"dueDate,omitempty"`
}

// NotePatch is a partial note update.
type NotePatch struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}
