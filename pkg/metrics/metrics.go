package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devfolio",
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of remote document store operations.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
	StoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "store_errors_total", Help: "Number of failed document store operations."},
		[]string{"operation"},
	)
	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "auth_attempts_total", Help: "Number of login attempts by outcome."},
		[]string{"status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "devfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(StoreOperationDuration)
	reg.MustRegister(StoreErrorsTotal)
	reg.MustRegister(AuthAttempts)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

// TrackStoreOperation times one load or save against the remote store.
func TrackStoreOperation(operation string) *prometheus.Timer {
	return prometheus.NewTimer(StoreOperationDuration.WithLabelValues(operation))
}

func TrackStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}

// TrackAuthAttempt records a login outcome ("success" or "failure").
func TrackAuthAttempt(status string) {
	AuthAttempts.WithLabelValues(status).Inc()
}
