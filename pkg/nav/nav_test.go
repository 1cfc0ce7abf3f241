package nav

import (
	"testing"

	"github.com/workboard/workspace/pkg/apiclient"
)

// screenName dispatches over the closed route set the way a shell would.
func screenName(r Route) string {
	switch r := r.(type) {
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	case Tasks:
		return "tasks"
	case Notes:
		return "notes"
	case Calendar:
		if r.SelectedDate != "" {
			return "calendar:" + r.SelectedDate
		}
		return "calendar"
	case NoteEditor:
		return "note-editor:" + string(r.Mode)
	default:
		return "unknown"
	}
}

func TestRouteDispatch(t *testing.T) {
	cases := []struct {
		route Route
		want  string
	}{
		{Login{}, "login"},
		{Dashboard{}, "dashboard"},
		{Tasks{}, "tasks"},
		{Notes{}, "notes"},
		{Calendar{}, "calendar"},
		{Calendar{SelectedDate: "2025-03-14"}, "calendar:2025-03-14"},
		{NoteEditor{Mode: EditorCreate}, "note-editor:create"},
		{NoteEditor{Mode: EditorEdit, Note: &apiclient.Note{ID: 3}}, "note-editor:edit"},
	}
	for _, tc := range cases {
		if got := screenName(tc.route); got != tc.want {
			t.Fatalf("route %T: expected %q, got %q", tc.route, tc.want, got)
		}
	}
}

type recordingNavigator struct {
	routes []Route
	backs  int
}

func (n *recordingNavigator) Navigate(r Route) { n.routes = append(n.routes, r) }
func (n *recordingNavigator) GoBack()          { n.backs++ }

func TestNavigatorContract(t *testing.T) {
	var nav Navigator = &recordingNavigator{}

	nav.Navigate(Tasks{})
	nav.Navigate(NoteEditor{Mode: EditorCreate})
	nav.GoBack()

	rec := nav.(*recordingNavigator)
	if len(rec.routes) != 2 || rec.backs != 1 {
		t.Fatalf("unexpected navigation log: %+v backs=%d", rec.routes, rec.backs)
	}
	if _, ok := rec.routes[0].(Tasks); !ok {
		t.Fatalf("expected Tasks route first, got %T", rec.routes[0])
	}
}
