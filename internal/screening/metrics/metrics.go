// Package metrics provides observability for the screening module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the screening module's Prometheus collectors. A nil *Metrics
// is safe to call, so services can run without observability wired.
type Metrics struct {
	// Screening outcomes by decision and reason
	Outcomes *prometheus.CounterVec

	// Best composite score per screening call
	BestScore prometheus.Histogram

	// Full screening call latency
	ScreenLatency prometheus.Histogram
}

// New creates a Metrics instance with all screening collectors registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_screening_outcomes_total",
			Help: "Total screening outcomes by decision and reason",
		}, []string{"decision", "reason"}),

		BestScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigil_screening_best_score",
			Help:    "Best composite match score per screening call",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),

		ScreenLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigil_screening_duration_seconds",
			Help:    "Duration of full screening calls",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}
}

// IncrementOutcome records a screening outcome.
func (m *Metrics) IncrementOutcome(decision, reason string) {
	if m != nil {
		m.Outcomes.WithLabelValues(decision, reason).Inc()
	}
}

// ObserveBestScore records the best composite score of a screening call.
func (m *Metrics) ObserveBestScore(score float64) {
	if m != nil {
		m.BestScore.Observe(score)
	}
}

// ObserveScreenLatency records the duration of a screening call.
func (m *Metrics) ObserveScreenLatency(d time.Duration) {
	if m != nil {
		m.ScreenLatency.Observe(d.Seconds())
	}
}
