package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/evalease/sentiment-service/internal/domain"
)

const namespace = "sentiment"

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	AnalysesTotal     *prometheus.CounterVec
	ScoreDistribution prometheus.Histogram
	ScorerFallbacks   prometheus.Counter
	RateLimited       prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of classified texts, by label.",
		}, []string{"polarity"}),

		ScoreDistribution: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of returned polarity scores.",
			Buckets:   prometheus.LinearBuckets(-1, 0.2, 11),
		}),

		ScorerFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scorer_fallbacks_total",
			Help:      "Upstream scorer failures answered by the local scorer.",
		}),

		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),

		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being processed.",
		}),
	}

	reg.MustRegister(
		m.AnalysesTotal,
		m.ScoreDistribution,
		m.ScorerFallbacks,
		m.RateLimited,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
	)

	return m
}

// ServiceHooks returns the callbacks expected by service.Hooks.
// Centralises the prometheus observation calls so the service stays import-free.
func (m *Metrics) ServiceHooks() (
	onAnalyzed func(domain.Analysis),
	onFallback func(error),
) {
	onAnalyzed = func(a domain.Analysis) {
		m.AnalysesTotal.WithLabelValues(string(a.Polarity)).Inc()
		m.ScoreDistribution.Observe(a.Score)
	}
	onFallback = func(error) {
		m.ScorerFallbacks.Inc()
	}
	return
}
