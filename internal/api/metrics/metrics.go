// Package metrics defines and registers all custom Prometheus metrics for the
// clinic backend. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_input", "unauthorized_email",
//     "role_mismatch", "invalid_credentials", or "store_error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionsCreatedTotal counts sessions created on successful logins.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)

// SessionsInvalidatedTotal counts explicit session invalidations (logout and
// guard-triggered teardown). Lazy TTL expiry is not counted here.
var SessionsInvalidatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_invalidated_total",
		Help:      "Total number of sessions explicitly invalidated.",
	},
)

// SessionRejectionsTotal counts requests turned away by the access guard.
// Label:
//   - reason: "missing_token", "not_found", or "invalid_user"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of protected requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts newly created citas. The service type is
// free-form user input, so it is not a label; label values stay closed sets.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created.",
	},
)

// AppointmentsListedTotal counts list requests by caller role.
var AppointmentsListedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_listed_total",
		Help:      "Total number of appointment list requests, by caller role.",
	},
	[]string{"rol"},
)
