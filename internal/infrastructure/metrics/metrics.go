// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "taproom"

const (
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelStatus    = "status"
	LabelIsolation = "isolation"
	LabelOutcome   = "outcome"
	LabelResource  = "resource"
)

var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status",
		Namespace: Namespace,
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)

var HTTPDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelMethod, LabelRoute},
)

var Transactions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      "db_transactions_total",
		Help:      "Database transactions by isolation level and outcome",
		Namespace: Namespace,
	},
	[]string{LabelIsolation, LabelOutcome},
)

var RowsStreamed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      "rows_streamed_total",
		Help:      "Rows scanned lazily from search queries",
		Namespace: Namespace,
	},
	[]string{LabelResource},
)

const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
	OutcomeError    = "error"
)
