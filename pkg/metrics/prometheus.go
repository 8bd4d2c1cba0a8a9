package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	searchResults    *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exscout_upstream_requests_total",
				Help: "Total number of upstream provider requests",
			},
			[]string{"provider", "op", "outcome"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exscout_upstream_duration_seconds",
				Help:    "Duration of upstream provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		searchResults: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exscout_search_results",
				Help:    "Number of results returned per symbol search",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
			},
			[]string{"provider"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exscout_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordUpstreamRequest records one upstream call and its outcome.
func (r *Recorder) RecordUpstreamRequest(provider, op, outcome string) {
	r.upstreamRequests.WithLabelValues(provider, op, outcome).Inc()
}

// RecordUpstreamLatency records upstream call latency in seconds.
func (r *Recorder) RecordUpstreamLatency(provider string, seconds float64) {
	r.upstreamLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordSearchResults records the size of a search result set.
func (r *Recorder) RecordSearchResults(provider string, count int) {
	r.searchResults.WithLabelValues(provider).Observe(float64(count))
}

// RecordError records an error occurrence by taxonomy kind.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
