package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	IngestRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_ingest_records_total",
			Help: "Catalog feed records by result (upserted, rejected).",
		},
		[]string{"result"},
	)

	IngestSourceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_ingest_source_requests_total",
			Help: "Feed requests by source and outcome (success, failure, rejected).",
		},
		[]string{"source", "outcome"},
	)

	IngestBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_ingest_breaker_state",
			Help: "Circuit breaker state per source (0 closed, 1 half-open, 2 open).",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(IngestRecordsTotal, IngestSourceRequestsTotal, IngestBreakerState)
}
