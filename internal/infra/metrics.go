// README: Prometheus collectors for pipeline outcomes and upstream call latency.
package infra

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	PathPrimary  = "primary"
	PathFallback = "fallback"
)

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	upstream *prometheus.HistogramVec
	requests *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripplanner",
			Name:      "pipeline_outcomes_total",
			Help:      "Generation pipeline results by path and fallback reason.",
		}, []string{"pipeline", "path", "reason"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripplanner",
			Name:      "upstream_call_seconds",
			Help:      "Latency of calls to external collaborators.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "outcome"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripplanner",
			Name:      "http_request_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	reg.MustRegister(
		m.outcomes,
		m.upstream,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordOutcome counts one pipeline run. reason is empty on the primary path.
func (m *Metrics) RecordOutcome(pipeline, path, reason string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(pipeline, path, reason).Inc()
}

// ObserveUpstream records how long a collaborator call took and whether it failed.
func (m *Metrics) ObserveUpstream(upstream string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstream.WithLabelValues(upstream, outcome).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveRequest(route, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
