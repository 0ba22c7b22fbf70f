// Package metrics defines the prometheus collectors for ledger and
// treasury operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRepositoryOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vdc",
		Subsystem: "ledger_repository",
		Name:      "operations_total",
		Help:      "Count of ledger file operations.",
	}, []string{"operation", "status"})
	ledgerRepositoryOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vdc",
		Subsystem: "ledger_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger file operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "status"})
)

// LedgerRepository tracks metrics for ledger file operations.
type LedgerRepository struct{}

// NewLedgerRepository creates a LedgerRepository metrics collector.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Observe records duration and status of a ledger file operation.
func (m LedgerRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRepositoryOpsTotal.WithLabelValues(operation, status).Inc()
	ledgerRepositoryOpDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
