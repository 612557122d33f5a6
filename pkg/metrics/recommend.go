package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "eduintel_recommend_latency_seconds",
		Help:    "Latency of the recommend handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommend requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eduintel_recommend_requests_total",
		Help: "Total number of recommend requests",
	})

	// Rejected profiles
	RecommendInvalidProfiles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eduintel_recommend_invalid_profiles_total",
		Help: "Student profiles rejected by request validation",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendInvalidProfiles,
	)
}
