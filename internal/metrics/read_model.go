package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readModelPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "read_model",
		Name:      "poll_total",
		Help:      "Count of completed read-model refreshes per key class.",
	}, []string{"key", "status"})

	readModelPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "read_model",
		Name:      "poll_duration_seconds",
		Help:      "Duration of read-model refreshes per key class.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"key", "status"})

	readModelSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "read_model",
		Name:      "skipped_ticks_total",
		Help:      "Count of timer ticks coalesced because a refresh was already in flight.",
	}, []string{"key"})

	readModelInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "read_model",
		Name:      "invalidations_total",
		Help:      "Count of explicit invalidations per key class.",
	}, []string{"key"})

	readModelBalanceKeys = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "read_model",
		Name:      "balance_keys",
		Help:      "Number of balance keys currently polled.",
	})
)

// ReadModel tracks metrics for the read-model cache.
type ReadModel struct{}

// NewReadModel constructs a ReadModel collector.
func NewReadModel() *ReadModel {
	return &ReadModel{}
}

// ObservePoll records a finished refresh for a key class.
func (m ReadModel) ObservePoll(key string, err error, started time.Time) {
	s := status(err)
	readModelPollTotal.WithLabelValues(key, s).Inc()
	readModelPollDuration.WithLabelValues(key, s).Observe(time.Since(started).Seconds())
}

// ObserveSkip records a coalesced tick.
func (m ReadModel) ObserveSkip(key string) {
	readModelSkippedTotal.WithLabelValues(key).Inc()
}

// ObserveInvalidate records an explicit invalidation.
func (m ReadModel) ObserveInvalidate(key string) {
	readModelInvalidationsTotal.WithLabelValues(key).Inc()
}

// SetBalanceKeys records how many balance keys are polled.
func (m ReadModel) SetBalanceKeys(n int) {
	readModelBalanceKeys.Set(float64(n))
}
