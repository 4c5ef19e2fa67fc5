// Package metrics holds the prometheus collectors of the emissions pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// skip reasons
const (
	ReasonUnknownAircraft = "unknown_aircraft_type"
	ReasonInvalidDuration = "invalid_duration"
)

var (
	FlightsEstimated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airport_flights_estimated_total",
			Help: "Number of flights whose emissions were estimated",
		},
	)

	FlightsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airport_flights_skipped_total",
			Help: "Number of flights left out of the estimation, by reason",
		},
		[]string{"reason"},
	)

	EmissionRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airport_emission_records_total",
			Help: "Number of emission records produced",
		},
	)

	PipelineStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airport_pipeline_step_duration_seconds",
			Help:    "Duration of the ETL pipeline steps",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step", "status"},
	)
)
