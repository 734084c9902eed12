// Package metrics provides Prometheus metrics collection for the medical
// report API. It exports HTTP server metrics plus counters for the analysis
// pipeline:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - analysis_attempts_total: Counter of outbound generative-text calls
//   - analysis_outcomes_total: Counter with outcome label (success/failure)
//   - analysis_duration_seconds: Histogram of full analyze latency
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	AnalysisAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_attempts_total",
			Help: "Total attempts against the generative-text service, retries included",
		},
	)

	AnalysisOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_outcomes_total",
			Help: "Analysis outcomes by result",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Full analyze latency including retries and delays",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(AnalysisAttemptsTotal)
	prometheus.MustRegister(AnalysisOutcomesTotal)
	prometheus.MustRegister(AnalysisDuration)
}
