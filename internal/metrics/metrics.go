// Package metrics provides the centralized Prometheus metrics registry
// for the predictor.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	UpstreamFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "upstream_fetches_total",
		Help:      "Total number of upstream NHL API fetches by endpoint",
	}, []string{"endpoint"})
	UpstreamFetchErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "upstream_fetch_errors_total",
		Help:      "Total number of failed upstream NHL API fetches by endpoint",
	}, []string{"endpoint"})
	FactorAbsencesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "factor_absences_total",
		Help:      "Total number of factors excluded from an aggregate by factor",
	}, []string{"factor"})
	PredictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "predictions_total",
		Help:      "Total number of game predictions produced",
	})
	SlateRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "slate_runs_total",
		Help:      "Total number of prediction slate runs",
	})
	SlateRunFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "puckcast",
		Name:      "slate_run_failures_total",
		Help:      "Total number of slate runs aborted on schedule failure",
	})
)

// Gauge metrics
var (
	LastSlateGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "puckcast",
		Name:      "last_slate_games",
		Help:      "Number of games in the most recent slate",
	})
)

// Histogram metrics
var (
	SlateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "puckcast",
		Name:      "slate_duration_seconds",
		Help:      "Duration of full slate runs in seconds",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(UpstreamFetchesTotal)
		registry.MustRegister(UpstreamFetchErrorsTotal)
		registry.MustRegister(FactorAbsencesTotal)
		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(SlateRunsTotal)
		registry.MustRegister(SlateRunFailuresTotal)
		registry.MustRegister(LastSlateGames)
		registry.MustRegister(SlateDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordUpstreamFetch records an upstream fetch and its outcome.
func RecordUpstreamFetch(endpoint string, err error) {
	UpstreamFetchesTotal.WithLabelValues(endpoint).Inc()
	if err != nil {
		UpstreamFetchErrorsTotal.WithLabelValues(endpoint).Inc()
	}
}

// RecordFactorAbsence records a factor excluded from an aggregate.
func RecordFactorAbsence(factor string) {
	FactorAbsencesTotal.WithLabelValues(factor).Inc()
}

// RecordPrediction records a produced game prediction.
func RecordPrediction() {
	PredictionsTotal.Inc()
}

// RecordSlateRun records a completed slate run.
func RecordSlateRun(games int, durationSeconds float64) {
	SlateRunsTotal.Inc()
	LastSlateGames.Set(float64(games))
	SlateDuration.Observe(durationSeconds)
}

// RecordSlateFailure records a slate aborted on schedule failure.
func RecordSlateFailure() {
	SlateRunFailuresTotal.Inc()
}
