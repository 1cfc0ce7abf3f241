// Package metrics defines and registers all custom Prometheus metrics for
// the workspace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workspace"

// TasksCreatedTotal counts successfully created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TasksDeletedTotal counts successfully deleted tasks.
var TasksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_deleted_total",
		Help:      "Total number of tasks deleted.",
	},
)

// NotesCreatedTotal counts successfully created notes.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_created_total",
		Help:      "Total number of notes created.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
