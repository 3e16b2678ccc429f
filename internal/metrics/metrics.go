package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gw_health_records"

// Gateway call outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeStatusError = "status_error"
	OutcomeError       = "error"
)

type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	GatewayCallsTotal    *prometheus.CounterVec
	GatewayCallDuration  prometheus.Histogram
	InsightsNoDataTotal  prometheus.Counter
	HealthLogsCreated    prometheus.Counter
	ReportsUploadedTotal prometheus.Counter
	OrphanedBlobsTotal   prometheus.Counter
}

// NewCollector registers every metric on a fresh registry together with the
// Go runtime and process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10, 30},
		}, []string{"method", "route", "status"}),

		GatewayCallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "insights",
			Name:      "gateway_calls_total",
			Help:      "Chat-completion gateway calls by outcome.",
		}, []string{"outcome"}),

		GatewayCallDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "insights",
			Name:      "gateway_call_duration_seconds",
			Help:      "Chat-completion gateway round trip latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}),

		InsightsNoDataTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "insights",
			Name:      "no_data_total",
			Help:      "Insight requests rejected because no health data was supplied.",
		}),

		HealthLogsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "health_logs_created_total",
			Help:      "Total health logs created.",
		}),

		ReportsUploadedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "reports_uploaded_total",
			Help:      "Total medical reports uploaded and recorded.",
		}),

		OrphanedBlobsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "orphaned_blobs_total",
			Help:      "Uploaded report objects left behind after a failed insert and failed cleanup. Alert if non-zero.",
		}),
	}
}

// Handler exposes the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveGatewayCall records the outcome and latency of one gateway call.
// A nil collector is a no-op.
func (c *Collector) ObserveGatewayCall(outcome string, seconds float64) {
	if c == nil {
		return
	}
	c.GatewayCallsTotal.WithLabelValues(outcome).Inc()
	c.GatewayCallDuration.Observe(seconds)
}

// IncNoData counts an insight request rejected for lack of data.
func (c *Collector) IncNoData() {
	if c == nil {
		return
	}
	c.InsightsNoDataTotal.Inc()
}

// IncHealthLogsCreated counts one created health log.
func (c *Collector) IncHealthLogsCreated() {
	if c == nil {
		return
	}
	c.HealthLogsCreated.Inc()
}

// IncReportsUploaded counts one recorded report.
func (c *Collector) IncReportsUploaded() {
	if c == nil {
		return
	}
	c.ReportsUploadedTotal.Inc()
}

// IncOrphanedBlobs counts one object that could not be cleaned up.
func (c *Collector) IncOrphanedBlobs() {
	if c == nil {
		return
	}
	c.OrphanedBlobsTotal.Inc()
}
