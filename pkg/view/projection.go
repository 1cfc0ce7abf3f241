// Package view derives day-granularity projections from a task collection:
// "due today", "due on a selected date", and calendar markers. Everything is
// pure and recomputed from the source collection, with no stored state
// beyond the date selection.
package view

import (
	"time"

	"github.com/workboard/workspace/pkg/apiclient"
)

// TasksOnDate returns the tasks whose due date falls on dateKey in loc.
// Tasks without a due date are excluded.
func TasksOnDate(tasks []apiclient.Task, dateKey string, loc *time.Location) []apiclient.Task {
	out := make([]apiclient.Task, 0)
	for _, t := range tasks {
		if t.DueDate != "" && dueDateKey(t.DueDate, loc) == dateKey {
			out = append(out, t)
		}
	}
	return out
}

// TasksToday returns the tasks due on the current local date.
func TasksToday(tasks []apiclient.Task, loc *time.Location) []apiclient.Task {
	return TasksOnDate(tasks, TodayKey(loc), loc)
}

// HasTasksOnDate reports whether any task is due on dateKey. Used to render
// calendar markers without materialising the filtered list.
func HasTasksOnDate(tasks []apiclient.Task, dateKey string, loc *time.Location) bool {
	for _, t := range tasks {
		if t.DueDate != "" && dueDateKey(t.DueDate, loc) == dateKey {
			return true
		}
	}
	return false
}

// CompletedCount returns how many tasks are completed.
func CompletedCount(tasks []apiclient.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Selection is the calendar's selected-date filter. Selecting the already
// selected date toggles the filter off; selecting a new date replaces it.
type Selection struct {
	key string
}

// Toggle selects dateKey, or clears the selection when dateKey is already
// selected.
func (s *Selection) Toggle(dateKey string) {
	if s.key == dateKey {
		s.key = ""
		return
	}
	s.key = dateKey
}

// Key returns the selected date key, if any.
func (s *Selection) Key() (string, bool) {
	return s.key, s.key != ""
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.key = ""
}

// Apply returns the tasks matching the selection, or the whole collection
// when nothing is selected.
func (s *Selection) Apply(tasks []apiclient.Task, loc *time.Location) []apiclient.Task {
	if s.key == "" {
		return tasks
	}
	return TasksOnDate(tasks, s.key, loc)
}
