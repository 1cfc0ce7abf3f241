package view

import (
	"fmt"
	"time"
)

// Layouts accepted for due timestamps, tried in order. Timestamps carrying a
// UTC offset are converted to the viewer's location; timestamps without one
// are taken to already be in it.
var instantLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LocalDateKey formats t as a zero-padded "YYYY-MM-DD" key in loc. A nil loc
// means time.Local.
func LocalDateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TodayKey returns the current date key in loc.
func TodayKey(loc *time.Location) string {
	return LocalDateKey(time.Now(), loc)
}

// ParseInstant parses an ISO-8601 due timestamp. The second return is false
// when s is empty or unparseable.
func ParseInstant(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dueDateKey returns the local date key of a due timestamp, or "" when the
// value is absent or unparseable.
func dueDateKey(dueDate string, loc *time.Location) string {
	t, ok := ParseInstant(dueDate, loc)
	if !ok {
		return ""
	}
	return LocalDateKey(t, loc)
}
