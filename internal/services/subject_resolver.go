package services

import (
	"errors"
	"log"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

// ErrSearchExhausted is returned when no generated itinerary spanned the event
// within the attempt budget.
var ErrSearchExhausted = errors.New("natural itinerary search exhausted")

type ResolutionMode string

const (
	ResolvedNatural   ResolutionMode = "natural"
	ResolvedForced    ResolutionMode = "forced"
	ResolvedSynthetic ResolutionMode = "synthetic"
)

type Resolution struct {
	Mode     ResolutionMode
	Attempts int
}

// SubjectResolver builds the designated agent's itinerary so that it is
// present at the target event. It prefers an organically generated itinerary
// and only falls back to forcing one stay, then to a synthetic stay.
type SubjectResolver struct {
	Generator   ItineraryGenerator
	Window      domain.Window
	Labels      []string
	MaxAttempts int
}

func (r SubjectResolver) Resolve(rng *randx.Stream, agentID string, ev domain.TargetEvent) (domain.Itinerary, Resolution) {
	it, attempts, err := r.searchNatural(rng, agentID, ev)
	res := Resolution{Mode: ResolvedNatural, Attempts: attempts}

	if errors.Is(err, ErrSearchExhausted) {
		if len(it.Stays) > 0 {
			it = r.force(rng, it, ev)
			res.Mode = ResolvedForced
		} else {
			it = r.synthesize(rng, agentID, ev)
			res.Mode = ResolvedSynthetic
		}
	}

	repairAdjacent(rng, &it, r.Labels, repairRules{attempts: insertRepairAttempts, pinned: pinTarget(ev)})

	log.Printf("op=resolver agent=%s mode=%s attempts=%d stays=%d", agentID, res.Mode, res.Attempts, len(it.Stays))
	return it, res
}

// searchNatural regenerates until a stay spans the event. On exhaustion it
// returns the last generated itinerary alongside ErrSearchExhausted.
func (r SubjectResolver) searchNatural(rng *randx.Stream, agentID string, ev domain.TargetEvent) (domain.Itinerary, int, error) {
	var last domain.Itinerary
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		last = r.Generator.Collect(rng, agentID)
		if _, ok := last.PresentAt(ev.Location, ev.At); ok {
			return last, attempt, nil
		}
	}
	return last, r.MaxAttempts, ErrSearchExhausted
}

// force stretches a random stay over the event instant and moves it to the
// event location.
func (r SubjectResolver) force(rng *randx.Stream, it domain.Itinerary, ev domain.TargetEvent) domain.Itinerary {
	it = it.Clone()
	idx := rng.IntN(len(it.Stays))
	old := it.Stays[idx]

	arrival := ev.At.Add(-hoursToDuration(rng.Uniform(2, 12)))
	if old.Arrival.Before(arrival) {
		arrival = old.Arrival
	}
	departure := ev.At.Add(hoursToDuration(rng.Uniform(2, 12)))
	if old.Departure.After(departure) {
		departure = old.Departure
	}

	it.Stays[idx] = domain.NewStay(it.AgentID, ev.Location, r.Window.Clamp(arrival), r.Window.Clamp(departure))
	return it
}

func (r SubjectResolver) synthesize(rng *randx.Stream, agentID string, ev domain.TargetEvent) domain.Itinerary {
	pre := hoursToDuration(rng.Uniform(presenceMarginMinHours, presenceMarginMaxHours))
	post := hoursToDuration(rng.Uniform(presenceMarginMinHours, presenceMarginMaxHours))
	return domain.Itinerary{
		AgentID: agentID,
		Stays: []domain.Stay{
			domain.NewStay(agentID, ev.Location, r.Window.Clamp(ev.At.Add(-pre)), r.Window.Clamp(ev.At.Add(post))),
		},
	}
}
