package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	httpDurationHistogram *prometheus.HistogramVec
	transitionCounter     *prometheus.CounterVec
	notificationCounter   *prometheus.CounterVec
	idSpaceRetryCounter   *prometheus.CounterVec
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"})

		transitionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transaction_transitions_total",
			Help: "Lifecycle transitions by transaction kind and target status",
		}, []string{"kind", "status"})

		notificationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_deliveries_total",
			Help: "Notification delivery outcomes",
		}, []string{"result"})

		idSpaceRetryCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "id_generation_retries_total",
			Help: "Identifier collisions retried during generation",
		}, []string{"space"})

		prometheus.MustRegister(
			httpDurationHistogram,
			transitionCounter,
			notificationCounter,
			idSpaceRetryCounter,
		)
	})
}

func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if httpDurationHistogram == nil {
		return
	}
	httpDurationHistogram.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

func IncrementTransition(kind, status string) {
	if transitionCounter == nil {
		return
	}
	transitionCounter.WithLabelValues(kind, status).Inc()
}

func IncrementNotificationDelivery(result string) {
	if notificationCounter == nil {
		return
	}
	notificationCounter.WithLabelValues(result).Inc()
}

func IncrementIDRetry(space string) {
	if idSpaceRetryCounter == nil {
		return
	}
	idSpaceRetryCounter.WithLabelValues(space).Inc()
}
