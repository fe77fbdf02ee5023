package obs

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvalMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEvalMetrics("test", reg)
	require.NotNil(t, m)

	m.Observe("order-discount", 1, 2*time.Millisecond)
	m.Observe("order-discount", 0, time.Millisecond)
	m.Observe("product-discount", 3, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EvalTotal.WithLabelValues("order-discount", "applied")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EvalTotal.WithLabelValues("order-discount", "empty")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EvalTotal.WithLabelValues("product-discount", "applied")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Emitted.WithLabelValues("order-discount")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Emitted.WithLabelValues("product-discount")))
}

func TestNewEvalMetricsReRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewEvalMetrics("test", reg)
	second := NewEvalMetrics("test", reg)
	assert.Same(t, first.EvalTotal, second.EvalTotal)
	assert.Same(t, first.EvalDur, second.EvalDur)
	assert.Same(t, first.Emitted, second.Emitted)
}

func TestObserveNilReceiver(t *testing.T) {
	var m *EvalMetrics
	assert.NotPanics(t, func() { m.Observe("order-discount", 1, time.Millisecond) })
}

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 1500.0, DurationMillis(1500*time.Millisecond))
}
