package obs

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EvalMetrics groups Prometheus collectors for function evaluations served
// by the harness.
type EvalMetrics struct {
	// EvalTotal counts evaluations by variant and outcome (applied|empty).
	EvalTotal *prometheus.CounterVec
	// EvalDur records evaluation latency in milliseconds by variant.
	EvalDur *prometheus.HistogramVec
	// Emitted counts individual discount entries emitted by variant.
	Emitted *prometheus.CounterVec
}

// NewEvalMetrics registers and returns evaluation metrics collectors.
func NewEvalMetrics(namespace string, reg prometheus.Registerer) *EvalMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &EvalMetrics{
		EvalTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of discount function evaluations by outcome.",
		}, []string{"variant", "outcome"}),
		EvalDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_ms",
			Help:      "Discount function evaluation latency in milliseconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}, []string{"variant"}),
		Emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discounts_emitted_total",
			Help:      "Total number of discount entries emitted.",
		}, []string{"variant"}),
	}
	mustRegisterCounterVec(reg, &m.EvalTotal)
	mustRegisterHistogramVec(reg, &m.EvalDur)
	mustRegisterCounterVec(reg, &m.Emitted)
	return m
}

// Observe records a single evaluation outcome.
func (m *EvalMetrics) Observe(variant string, emitted int, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "empty"
	if emitted > 0 {
		outcome = "applied"
	}
	m.EvalTotal.WithLabelValues(variant, outcome).Inc()
	m.EvalDur.WithLabelValues(variant).Observe(DurationMillis(elapsed))
	if emitted > 0 {
		m.Emitted.WithLabelValues(variant).Add(float64(emitted))
	}
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegisterCounterVec(reg prometheus.Registerer, vec **prometheus.CounterVec) {
	if err := reg.Register(*vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				*vec = existing
			}
			return
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
}

func mustRegisterHistogramVec(reg prometheus.Registerer, vec **prometheus.HistogramVec) {
	if err := reg.Register(*vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				*vec = existing
			}
			return
		}
		panic(fmt.Errorf("register histogram: %w", err))
	}
}
