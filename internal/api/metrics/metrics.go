// Package metrics defines and registers the custom Prometheus metrics of the
// school API. HTTP request metrics come from the echoprometheus middleware;
// this package only holds the domain counters.
//
// All metrics are registered with the default registry at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of school registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests stopped by the auth guards.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token", "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or ownership checks.",
	},
	[]string{"reason"},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestErrorsTotal counts error responses by error kind.
// Label:
//   - kind: "incomplete", "validation", "duplicate_email", "not_found", "transient", "internal", ...
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of error responses, by error kind.",
	},
	[]string{"kind"},
)

// ── Message metrics ───────────────────────────────────────────────────────────

// MessagesSentTotal counts send requests.
// Label:
//   - result: "created" or "replayed"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of message send requests, by result.",
	},
	[]string{"result"},
)
