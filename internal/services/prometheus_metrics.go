package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	parseRequests        *prometheus.CounterVec
	parseStageResults    *prometheus.CounterVec
	parseConfidence      prometheus.Histogram
	parseDuration        prometheus.Histogram
	categoryAssignments  *prometheus.CounterVec
	expensesRecorded     *prometheus.CounterVec
	pendingStored        prometheus.Counter
	pendingSwept         prometheus.Counter
	pendingAmounts       prometheus.Gauge
	telegramRequests     *prometheus.CounterVec
	telegramDuration     prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	webhookUpdates       *prometheus.CounterVec
	webhookUpdateLatency prometheus.Histogram
}

// NewPrometheusMetrics registers the bot metrics on reg. A nil registerer
// means the default Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		parseRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_parse_requests_total",
				Help: "Total number of parsed messages by the last stage reached",
			},
			[]string{"stage"},
		),
		parseStageResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_parse_stage_results_total",
				Help: "Pipeline stage outcomes",
			},
			[]string{"stage", "result"},
		),
		parseConfidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_parse_confidence",
				Help:    "Confidence of parsed transactions",
				Buckets: []float64{0.5, 0.7, 0.8, 0.9, 0.95, 1.0},
			},
		),
		parseDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_parse_duration_microseconds",
				Help:    "Pipeline processing duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		categoryAssignments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_category_assignments_total",
				Help: "Total number of category assignments",
			},
			[]string{"category", "source"},
		),
		expensesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_recorded_total",
				Help: "Total number of expenses stored",
			},
			[]string{"source"},
		),
		pendingStored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pending_amounts_stored_total",
				Help: "Total number of amounts parked while waiting for a category",
			},
		),
		pendingSwept: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pending_amounts_expired_total",
				Help: "Total number of pending amounts removed after their TTL",
			},
		),
		pendingAmounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pending_amounts",
				Help: "Current number of pending amounts",
			},
		),
		telegramRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telegram_api_requests_total",
				Help: "Total number of Telegram Bot API calls",
			},
			[]string{"method", "status"},
		),
		telegramDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "telegram_api_duration_milliseconds",
				Help:    "Telegram Bot API call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		webhookUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_updates_total",
				Help: "Total number of Telegram updates received",
			},
			[]string{"kind", "status"},
		),
		webhookUpdateLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "webhook_update_duration_milliseconds",
				Help:    "Update handling duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "parse.completed":
		stage := tags["stage"]
		if stage == "" {
			stage = "none"
		}
		m.parseRequests.WithLabelValues(stage).Inc()
	case "category.assigned":
		if category := tags["category"]; category != "" {
			m.categoryAssignments.WithLabelValues(category, tags["source"]).Inc()
		}
	case "expense.recorded":
		m.expensesRecorded.WithLabelValues(tags["source"]).Inc()
	case "pending.stored":
		m.pendingStored.Inc()
	case "telegram.call":
		if status != "" {
			m.telegramRequests.WithLabelValues(tags["method"], status).Inc()
		}
	case "webhook.update":
		m.webhookUpdates.WithLabelValues(tags["kind"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "parse.pipeline":
		m.parseDuration.Observe(float64(duration.Microseconds()))
	case "telegram.call":
		m.telegramDuration.Observe(float64(duration.Milliseconds()))
	case "webhook.update":
		m.webhookUpdateLatency.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "parse.confidence":
		m.parseConfidence.Observe(value)
	case "pending.amounts":
		m.pendingAmounts.Set(value)
	case "pending.expired":
		m.pendingSwept.Add(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

// ObserveStage implements parser.Observer
func (m *PrometheusMetrics) ObserveStage(stage int, matched bool) {
	result := "miss"
	if matched {
		result = "match"
	}
	m.parseStageResults.WithLabelValues(strconv.Itoa(stage), result).Inc()
}
