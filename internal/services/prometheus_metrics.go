package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by MetricsRecorderInterface.
const (
	MetricEventProcessed      = "event.processed"
	MetricEventFailed         = "event.failed"
	MetricEventProcessing     = "event.processing"
	MetricIndexWrite          = "index.write"
	MetricMessageReceived     = "message.received"
	MetricMessageAcknowledged = "message.acknowledged"
	MetricMessageFailed       = "message.failed"
	MetricPollError           = "poll.error"
	MetricCallerRuns          = "pool.caller_runs"
	MetricQueryRouted         = "query.routed"
	MetricQueryStore          = "query.store"
	MetricQuerySearch         = "query.search"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricQueueDepth          = "queue.depth"
)

type PrometheusMetrics struct {
	eventsProcessed     *prometheus.CounterVec
	eventDuration       prometheus.Histogram
	indexWrites         *prometheus.CounterVec
	messagesReceived    prometheus.Counter
	messagesAcked       prometheus.Counter
	messageFailures     *prometheus.CounterVec
	pollErrors          prometheus.Counter
	callerRuns          prometheus.Counter
	queriesRouted       *prometheus.CounterVec
	queryDuration       *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	queueDepth          prometheus.Gauge
}

// NewPrometheusMetrics registers the activity feed collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		eventsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_feed_events_processed_total",
				Help: "Total number of transaction events processed",
			},
			[]string{"status"},
		),
		eventDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "activity_feed_event_processing_duration_milliseconds",
				Help:    "Transaction event processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		indexWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_feed_index_writes_total",
				Help: "Total number of search index writes by outcome",
			},
			[]string{"status"},
		),
		messagesReceived: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "activity_feed_messages_received_total",
				Help: "Total number of queue messages received",
			},
		),
		messagesAcked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "activity_feed_messages_acknowledged_total",
				Help: "Total number of queue messages deleted after processing",
			},
		),
		messageFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_feed_message_failures_total",
				Help: "Total number of queue messages left for redelivery",
			},
			[]string{"reason"},
		),
		pollErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "activity_feed_poll_errors_total",
				Help: "Total number of failed queue polls",
			},
		),
		callerRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "activity_feed_worker_pool_caller_runs_total",
				Help: "Total number of tasks run on the poll loop because the worker queue was full",
			},
		),
		queriesRouted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_feed_queries_total",
				Help: "Total number of feed queries by backend",
			},
			[]string{"backend"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "activity_feed_query_duration_seconds",
				Help:    "Feed query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		queueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "activity_feed_queue_depth",
				Help: "Approximate number of messages waiting in the event queue",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricEventProcessed:
		m.eventsProcessed.WithLabelValues(tags["status"]).Inc()
	case MetricEventFailed:
		m.eventsProcessed.WithLabelValues("failed_" + tags["reason"]).Inc()
	case MetricIndexWrite:
		m.indexWrites.WithLabelValues(tags["status"]).Inc()
	case MetricMessageReceived:
		m.messagesReceived.Inc()
	case MetricMessageAcknowledged:
		m.messagesAcked.Inc()
	case MetricMessageFailed:
		m.messageFailures.WithLabelValues(tags["reason"]).Inc()
	case MetricPollError:
		m.pollErrors.Inc()
	case MetricCallerRuns:
		m.callerRuns.Inc()
	case MetricQueryRouted:
		m.queriesRouted.WithLabelValues(tags["backend"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricEventProcessing:
		m.eventDuration.Observe(float64(duration.Milliseconds()))
	case MetricQueryStore:
		m.queryDuration.WithLabelValues("store").Observe(duration.Seconds())
	case MetricQuerySearch:
		m.queryDuration.WithLabelValues("search").Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricQueueDepth:
		m.queueDepth.Set(value)
	}
}
