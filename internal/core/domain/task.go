package domain

import "time"

// Task is a single to-do item owned by exactly one user.
//
// DueDate is kept as the raw string the client supplied. Due timestamps may
// arrive without a UTC offset ("2025-03-14T23:30:00") and their calendar-day
// meaning depends on the viewer's location, so the server never reparses or
// normalises them.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"userId"`
	DueDate   string    `json:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
