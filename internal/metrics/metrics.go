// Package metrics defines and registers the Prometheus collectors of the
// server. It is the single source of truth for metric names, labels and help
// strings. Collectors are registered with the default registry on package
// initialisation and exposed through GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// ── Authentication ────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts credential operations.
// Labels:
//   - operation: "login", "register" or "refresh"
//   - result: "success", "user_not_found", "invalid_credentials", "conflict", "unauthorized" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempts_total",
		Help:      "Total number of login, register and refresh attempts by outcome.",
	},
	[]string{"operation", "result"},
)

// TokenVerificationsTotal counts bearer and refresh token verifications.
// Label:
//   - result: "valid", "expired" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of JWT verifications by outcome.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures bcrypt hashing time including the wait for a pool slot.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing, including time spent waiting for a hashing slot.",
		Buckets:   prometheus.DefBuckets,
	},
)

// PasswordHashWaiting tracks goroutines waiting for a hashing slot.
var PasswordHashWaiting = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "password_hash_waiting",
		Help:      "Number of callers currently waiting for a password hashing slot.",
	},
)

// ── Storage ───────────────────────────────────────────────────────────────────

// UserCacheRequestsTotal counts user cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var UserCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_requests_total",
		Help:      "Total number of user cache lookups by result.",
	},
	[]string{"result"},
)

// ProfileStatusesClearedTotal counts statuses removed after their clear interval.
var ProfileStatusesClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_statuses_cleared_total",
		Help:      "Total number of profile statuses removed after their clear interval elapsed.",
	},
)

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request handling time.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/posts/{id}")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
