package view

import (
	"testing"
	"time"

	"github.com/workboard/workspace/pkg/apiclient"
)

func TestLocalDateKey_ZeroPadded(t *testing.T) {
	loc := time.UTC
	got := LocalDateKey(time.Date(2025, 3, 5, 9, 0, 0, 0, loc), loc)
	if got != "2025-03-05" {
		t.Fatalf("expected 2025-03-05, got %q", got)
	}
}

func TestParseInstant_ZonelessStaysOnLocalDate(t *testing.T) {
	// A late-evening timestamp with no UTC offset must stay on its calendar
	// date even in a negative-offset zone. Converting via UTC would shift it
	// to the next day.
	loc := time.FixedZone("UTC-7", -7*3600)

	got, ok := ParseInstant("2025-03-14T23:30:00", loc)
	if !ok {
		t.Fatalf("parse failed")
	}
	if key := LocalDateKey(got, loc); key != "2025-03-14" {
		t.Fatalf("expected 2025-03-14, got %q", key)
	}
}

func TestParseInstant_OffsetConvertedToViewerZone(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)

	// 02:00 UTC on the 15th is 19:00 on the 14th in UTC-7.
	got, ok := ParseInstant("2025-03-15T02:00:00Z", loc)
	if !ok {
		t.Fatalf("parse failed")
	}
	if key := LocalDateKey(got, loc); key != "2025-03-14" {
		t.Fatalf("expected 2025-03-14, got %q", key)
	}
}

func TestParseInstant_DateOnly(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)

	got, ok := ParseInstant("2025-03-14", loc)
	if !ok {
		t.Fatalf("parse failed")
	}
	if key := LocalDateKey(got, loc); key != "2025-03-14" {
		t.Fatalf("expected 2025-03-14, got %q", key)
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	if _, ok := ParseInstant("", time.UTC); ok {
		t.Fatalf("empty string must not parse")
	}
	if _, ok := ParseInstant("not-a-date", time.UTC); ok {
		t.Fatalf("garbage must not parse")
	}
}

func TestTasksOnDate(t *testing.T) {
	loc := time.UTC
	tasks := []apiclient.Task{
		{ID: 1, Title: "Due on 14th", DueDate: "2025-03-14T10:00:00"},
		{ID: 2, Title: "Due on 15th", DueDate: "2025-03-15"},
		{ID: 3, Title: "No due date"},
		{ID: 4, Title: "Unparseable", DueDate: "soon"},
	}

	got := TasksOnDate(tasks, "2025-03-14", loc)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected filter result: %+v", got)
	}

	if !HasTasksOnDate(tasks, "2025-03-15", loc) {
		t.Fatalf("expected marker for 2025-03-15")
	}
	if HasTasksOnDate(tasks, "2025-03-16", loc) {
		t.Fatalf("expected no marker for 2025-03-16")
	}
}

func TestCompletedCount(t *testing.T) {
	tasks := []apiclient.Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: true},
	}
	if n := CompletedCount(tasks); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestSelection_ToggleAndApply(t *testing.T) {
	loc := time.UTC
	tasks := []apiclient.Task{
		{ID: 1, DueDate: "2025-03-14"},
		{ID: 2, DueDate: "2025-03-15"},
	}

	var sel Selection
	if _, ok := sel.Key(); ok {
		t.Fatalf("fresh selection must be empty")
	}
	if got := sel.Apply(tasks, loc); len(got) != 2 {
		t.Fatalf("empty selection must pass everything through, got %+v", got)
	}

	sel.Toggle("2025-03-14")
	if key, ok := sel.Key(); !ok || key != "2025-03-14" {
		t.Fatalf("expected selected key, got %q/%v", key, ok)
	}
	if got := sel.Apply(tasks, loc); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected filtered result: %+v", got)
	}

	// Toggling the same date clears the filter.
	sel.Toggle("2025-03-14")
	if _, ok := sel.Key(); ok {
		t.Fatalf("toggling the selected date must clear it")
	}

	sel.Toggle("2025-03-14")
	sel.Toggle("2025-03-15")
	if key, _ := sel.Key(); key != "2025-03-15" {
		t.Fatalf("toggling a new date must replace the selection, got %q", key)
	}

	sel.Clear()
	if _, ok := sel.Key(); ok {
		t.Fatalf("clear must drop the selection")
	}
}
