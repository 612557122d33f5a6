package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_runs_total",
			Help: "Count of recommendation runs by outcome.",
		},
		[]string{"outcome"},
	)

	PersistenceFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_persistence_failures_total",
			Help: "Recommendation batches the persistence gateway failed to store.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationRunsTotal, PersistenceFailuresTotal)
}
