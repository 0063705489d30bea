package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mutation",
		Name:      "total",
		Help:      "Count of finished mutations.",
	}, []string{"kind", "status"})

	mutationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mutation",
		Name:      "duration_seconds",
		Help:      "Duration of mutations from trigger to outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	mutationRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mutation",
		Name:      "rejected_total",
		Help:      "Count of triggers rejected because a mutation of the same kind was pending.",
	}, []string{"kind"})
)

// Mutation tracks metrics for the mutation coordinator.
type Mutation struct{}

// NewMutation constructs a Mutation collector.
func NewMutation() *Mutation {
	return &Mutation{}
}

// ObserveMutation records a finished mutation.
func (m Mutation) ObserveMutation(kind string, err error, started time.Time) {
	s := status(err)
	mutationTotal.WithLabelValues(kind, s).Inc()
	mutationDuration.WithLabelValues(kind, s).Observe(time.Since(started).Seconds())
}

// ObserveRejected records a trigger refused while a mutation was pending.
func (m Mutation) ObserveRejected(kind string) {
	mutationRejectedTotal.WithLabelValues(kind).Inc()
}
