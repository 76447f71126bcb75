package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return metrics, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter("parse.completed", map[string]string{"stage": "4"})
	m.IncrementCounter("parse.completed", map[string]string{"stage": "4"})
	m.IncrementCounter("parse.completed", nil)
	m.IncrementCounter("category.assigned", map[string]string{"category": "coffee", "source": "keyword"})
	m.IncrementCounter("category.assigned", map[string]string{"source": "keyword"})
	m.IncrementCounter("expense.recorded", map[string]string{"source": "manual"})
	m.IncrementCounter("pending.stored", nil)
	m.IncrementCounter("telegram.call", map[string]string{"method": "sendMessage", "status": "ok"})
	m.IncrementCounter("telegram.call", map[string]string{"method": "sendMessage"})
	m.IncrementCounter("webhook.update", map[string]string{"kind": "message", "status": "ok"})
	m.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parseRequests.WithLabelValues("4")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseRequests.WithLabelValues("none")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.categoryAssignments))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.expensesRecorded.WithLabelValues("manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pendingStored))
	assert.Equal(t, 1, testutil.CollectAndCount(m.telegramRequests))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookUpdates.WithLabelValues("message", "ok")))
}

func TestPrometheusMetrics_Gauges(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordGauge("pending.amounts", 7, nil)
	m.RecordGauge("pending.expired", 3, nil)
	m.RecordGauge("pending.expired", 2, nil)
	m.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{"service": "telegram"})
	m.RecordGauge("parse.confidence", 0.9, nil)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.pendingAmounts))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.pendingSwept))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("telegram")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.parseConfidence))
}

func TestPrometheusMetrics_ObserveStage(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveStage(1, false)
	m.ObserveStage(2, true)
	m.ObserveStage(2, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseStageResults.WithLabelValues("1", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parseStageResults.WithLabelValues("2", "match")))
}

func TestPrometheusMetrics_Durations(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordProcessingTime("parse.pipeline", 40*time.Microsecond)
	m.RecordProcessingTime("telegram.call", 120*time.Millisecond)
	m.RecordProcessingTime("webhook.update", 15*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["expense_parse_duration_microseconds"])
	assert.True(t, names["telegram_api_duration_milliseconds"])
	assert.True(t, names["webhook_update_duration_milliseconds"])
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
