// Package nav models navigation targets as a closed set of route types, one
// variant per destination screen, so dispatch over destinations is checked
// at compile time instead of passing screen names and untyped params.
package nav

import "github.com/workboard/workspace/pkg/apiclient"

// Route is a navigation destination. The method set is unexported so the set
// of variants is closed to this package.
type Route interface {
	isRoute()
}

// Login is the sign-in screen.
type Login struct{}

// Dashboard is the workspace overview.
type Dashboard struct{}

// Tasks is the task list screen.
type Tasks struct{}

// Notes is the notes grid screen.
type Notes struct{}

// Calendar is the calendar planner screen.
type Calendar struct {
	// SelectedDate is a "YYYY-MM-DD" key, empty for no preselection.
	SelectedDate string
}

// EditorMode distinguishes creating a note from editing one.
type EditorMode string

const (
	EditorCreate EditorMode = "create"
	EditorEdit   EditorMode = "edit"
)

// NoteEditor opens a note for creation or editing. Note is nil in create
// mode.
type NoteEditor struct {
	Mode EditorMode
	Note *apiclient.Note
}

func (Login) isRoute()      {}
func (Dashboard) isRoute()  {}
func (Tasks) isRoute()      {}
func (Notes) isRoute()      {}
func (Calendar) isRoute()   {}
func (NoteEditor) isRoute() {}

// Navigator is the opaque navigation capability screens receive.
type Navigator interface {
	Navigate(route Route)
	GoBack()
}
