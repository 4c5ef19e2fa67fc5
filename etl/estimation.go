package etl

import (
	"airport-air-quality/internals"
	"airport-air-quality/metrics"
	"airport-air-quality/model"
	"context"
	"errors"
	"golang.org/x/sync/errgroup"
	"log"
)

type EstimationResult struct {
	Records   []model.EmissionRecord
	Estimated int
	// unknown aircraft type
	Skipped int
	// non-positive duration, a data quality defect of the input
	Invalid int
}

// CalculateEmissions estimates every flight on up to workers goroutines.
// Per-flight errors never stop the batch; only context cancellation does.
// Records are returned in the order of flights.
func CalculateEmissions(ctx context.Context, ref internals.ReferenceData, flights []model.Flight, workers int) (EstimationResult, error) {
	if workers <= 0 {
		workers = 1
	}

	perFlight := make([][]model.EmissionRecord, len(flights))
	perFlightErr := make([]error, len(flights))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := range flights {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			// every goroutine writes only its own index
			perFlight[i], perFlightErr[i] = internals.Estimate(ref, flights[i])
			return nil
		})
	}
	err := group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return EstimationResult{}, err
	}

	result := EstimationResult{
		Records: make([]model.EmissionRecord, 0, len(flights)*ref.RecordsPerFlight()),
	}
	for i, flight := range flights {
		err = perFlightErr[i]
		switch {
		case err == nil:
			result.Records = append(result.Records, perFlight[i]...)
			result.Estimated++
			metrics.FlightsEstimated.Inc()
			metrics.EmissionRecords.Add(float64(len(perFlight[i])))
		case errors.Is(err, internals.ErrInvalidDuration):
			log.Printf("Rejecting flight %s: %v", flight.FlightID, err)
			result.Invalid++
			metrics.FlightsSkipped.WithLabelValues(metrics.ReasonInvalidDuration).Inc()
		default:
			log.Printf("Skipping flight %s: %v", flight.FlightID, err)
			result.Skipped++
			metrics.FlightsSkipped.WithLabelValues(metrics.ReasonUnknownAircraft).Inc()
		}
	}

	return result, nil
}
