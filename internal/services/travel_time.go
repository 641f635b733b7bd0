package services

import (
	"math"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/ports"
	"itinerary-dataset/internal/randx"
)

const (
	minTravelHours     = 0.5
	travelJitterLoHour = -0.5
	travelJitterHiHour = 1.5
)

// TravelTimeEstimator approximates door-to-door transit time between two cities.
//
// The model is cruise time at a fixed average speed plus a fixed ground
// overhead plus uniform jitter, floored at half an hour. It is not a routing
// engine and makes no attempt at real-world accuracy.
type TravelTimeEstimator struct {
	Provider      ports.DistanceProvider
	AvgSpeedKmh   float64
	OverheadHours float64
}

// Estimate consumes exactly one draw from rng.
func (e TravelTimeEstimator) Estimate(rng *randx.Stream, from, to domain.Location) time.Duration {
	km := e.Provider.DistanceKm(from, to)
	hours := km/e.AvgSpeedKmh + e.OverheadHours + rng.Uniform(travelJitterLoHour, travelJitterHiHour)
	return hoursToDuration(math.Max(minTravelHours, hours))
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func daysToDuration(d float64) time.Duration {
	return time.Duration(d * 24 * float64(time.Hour))
}
