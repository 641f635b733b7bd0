package services

import (
	"iter"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

var (
	stayDayOptions = []float64{1, 2, 3, 4, 5, 7, 10, 14, 21}
	stayDayWeights = []float64{20, 18, 15, 12, 10, 8, 6, 6, 5}
	quarterMinutes = []int{0, 15, 30, 45}
)

const (
	maxNextCityResamples = 5
	truncateMinRemaining = 4 * time.Hour
	truncateMaxBack      = 6 * time.Hour
	truncateMinStay      = time.Hour
)

// ItineraryGenerator produces one agent's chronological sequence of stays.
//
// The algorithm is identifier-independent: the agent ID only labels the
// output, so two agents generated from the same stream position get the same
// route. Generation stops at the trip cap or when the next arrival would fall
// outside the window.
type ItineraryGenerator struct {
	Window          domain.Window
	Cities          []domain.Location
	Estimator       TravelTimeEstimator
	MaxTrips        int
	StartWindowDays float64
}

// Generate lazily yields the stays for agentID. Random draws happen while the
// sequence is consumed, so stopping early leaves the stream at a different
// position than a full Collect would.
func (g ItineraryGenerator) Generate(rng *randx.Stream, agentID string) iter.Seq[domain.Stay] {
	return func(yield func(domain.Stay) bool) {
		w := g.Window

		firstArrival := w.Start.
			Add(daysToDuration(rng.Uniform(0, g.StartWindowDays))).
			Add(hoursToDuration(rng.Uniform(0, 23))).
			Add(time.Duration(randx.Pick(rng, quarterMinutes)) * time.Minute)
		if firstArrival.After(w.End) {
			return
		}

		current := firstArrival
		city := randx.Pick(rng, g.Cities)
		trips := 0

		for {
			trips++

			stayDays := stayDayOptions[rng.Weighted(stayDayWeights)]
			departure := current.
				Add(daysToDuration(stayDays)).
				Add(hoursToDuration(rng.Uniform(0, 20)))

			if departure.After(w.End) {
				remaining := w.End.Sub(current)
				if remaining <= truncateMinRemaining {
					return
				}
				maxBack := min(truncateMaxBack, remaining-truncateMinStay)
				departure = w.End.Add(-hoursToDuration(rng.Uniform(0, maxBack.Hours())))
			}

			if !yield(domain.NewStay(agentID, city.Label(), current, departure)) {
				return
			}

			next := g.pickNextCity(rng, city)
			travel := g.Estimator.Estimate(rng, city, next)
			layover := hoursToDuration(rng.Uniform(2, 36))
			nextArrival := departure.Add(travel + layover)

			if nextArrival.After(w.End) || trips >= g.MaxTrips {
				return
			}

			nextArrival = snapToQuarter(nextArrival, randx.Pick(rng, quarterMinutes))
			if nextArrival.After(w.End) {
				return
			}

			city = next
			current = nextArrival
		}
	}
}

// Collect materializes a generated itinerary.
func (g ItineraryGenerator) Collect(rng *randx.Stream, agentID string) domain.Itinerary {
	it := domain.Itinerary{AgentID: agentID}
	for s := range g.Generate(rng, agentID) {
		it.Stays = append(it.Stays, s)
	}
	return it
}

// FallbackStay builds the single stay used when Generate yields nothing.
func (g ItineraryGenerator) FallbackStay(rng *randx.Stream, agentID string) domain.Stay {
	w := g.Window
	arrival := w.Start.
		Add(daysToDuration(rng.Uniform(0, 3))).
		Add(hoursToDuration(rng.Uniform(6, 20)))
	departure := arrival.
		Add(24 * time.Hour).
		Add(hoursToDuration(rng.Uniform(0, 12)))

	arrival = w.Clamp(arrival)
	departure = w.Clamp(departure)
	city := randx.Pick(rng, g.Cities)

	return domain.NewStay(agentID, city.Label(), arrival, departure)
}

// pickNextCity avoids staying put, but gives up after a few resamples.
// A repeated city is tolerated.
func (g ItineraryGenerator) pickNextCity(rng *randx.Stream, current domain.Location) domain.Location {
	next := randx.Pick(rng, g.Cities)
	for attempts := 0; next.Name == current.Name && attempts < maxNextCityResamples; attempts++ {
		next = randx.Pick(rng, g.Cities)
	}
	return next
}

func snapToQuarter(t time.Time, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, time.UTC)
}
