// Package metrics defines and registers all custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time and are
// exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - service: the catalog service name booked (e.g. "haircut")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service name.",
	},
	[]string{"service"},
)

// StatusUpdatesTotal counts booking status mutations that were persisted.
// Label:
//   - status: the new status applied ("pending", "confirmed", "cancelled", "postponed")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_updates_total",
		Help:      "Total number of booking status updates, by resulting status.",
	},
	[]string{"status"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - actor:  "admin" or "customer"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by actor type and result.",
	},
	[]string{"actor", "result"},
)

// ── Loyalty accrual metrics ───────────────────────────────────────────────────

// AccrualsProcessedTotal counts loyalty accruals that completed successfully.
var AccrualsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loyalty_accruals_processed_total",
		Help:      "Total number of loyalty accrual events successfully applied.",
	},
)

// AccrualErrorsTotal counts accruals that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "customer_not_found", "apply_failed")
var AccrualErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loyalty_accrual_errors_total",
		Help:      "Total number of loyalty accrual events that failed processing.",
	},
	[]string{"reason"},
)

// AccrualsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new accrual, processed)
var AccrualsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loyalty_accruals_dedup_total",
		Help:      "Total number of accrual deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AccrualDuration measures how long a single accrual takes end-to-end.
var AccrualDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "loyalty_accrual_duration_seconds",
		Help:      "Duration of accrual processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
