// Package metrics defines and registers all custom Prometheus metrics for
// the taskboard API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts completed registrations.
// Label:
//   - result: "created", "validation_error", "duplicate_email", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts tokens added to the revocation set via logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked by logout.",
	},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// TasksCreatedTotal counts newly created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TasksCascadeDeletedTotal counts tasks removed by project delete cascades.
var TasksCascadeDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_cascade_deleted_total",
		Help:      "Total number of tasks deleted because their project was deleted.",
	},
)
