// Package metrics defines and registers all custom Prometheus metrics for the
// user manager API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermanager"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts finished login attempts.
// Label:
//   - result: the terminal login state ("token_issued" or "rejected")
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by terminal state.",
	},
	[]string{"result"},
)

// RoleFallbackTotal counts logins whose role could not be resolved and were
// issued a token with the fallback role.
var RoleFallbackTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_fallback_total",
		Help:      "Total number of role lookups that fell back to the default role.",
	},
)

// ── Token metrics ─────────────────────────────────────────────────────────────

// TokensIssuedTotal counts signed tokens handed out.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// TokenRejectionsTotal counts protected requests refused by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_header" or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by bearer token validation.",
	},
	[]string{"reason"},
)

// ── Password hashing metrics ──────────────────────────────────────────────────

// PasswordHashDuration measures bcrypt work per call.
// Label:
//   - op: "hash" or "verify"
var PasswordHashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt hash and verify operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"op"},
)

// ── Role cache metrics ────────────────────────────────────────────────────────

// RoleCacheLookupsTotal counts role-name cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var RoleCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_lookups_total",
		Help:      "Total number of role-name cache lookups, labelled by result.",
	},
	[]string{"result"},
)
