package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	treasuryOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vdc",
		Subsystem: "treasury",
		Name:      "operations_total",
		Help:      "Count of mint and redeem attempts by outcome.",
	}, []string{"operation", "outcome"})
	treasuryOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vdc",
		Subsystem: "treasury",
		Name:      "operation_duration_seconds",
		Help:      "Duration of mint and redeem attempts.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "outcome"})
)

// Treasury tracks outcomes of mint and redeem orchestrations.
type Treasury struct{}

// NewTreasury creates a Treasury metrics collector.
func NewTreasury() *Treasury {
	return &Treasury{}
}

// ObserveMint records the outcome of one mint attempt.
func (m Treasury) ObserveMint(outcome string, started time.Time) {
	m.observe("mint", outcome, started)
}

// ObserveRedeem records the outcome of one redeem attempt.
func (m Treasury) ObserveRedeem(outcome string, started time.Time) {
	m.observe("redeem", outcome, started)
}

func (Treasury) observe(operation, outcome string, started time.Time) {
	treasuryOpsTotal.WithLabelValues(operation, outcome).Inc()
	treasuryOpDuration.WithLabelValues(operation, outcome).Observe(time.Since(started).Seconds())
}
