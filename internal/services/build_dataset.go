package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/platform/obs"
	"itinerary-dataset/internal/randx"
)

var ErrEmptyRoster = errors.New("roster is empty")

type BuildDatasetRequest struct {
	Roster          []string
	Window          domain.Window
	Cities          []domain.Location
	Estimator       TravelTimeEstimator
	MaxTrips        int
	StartWindowDays float64
	JitterSD        time.Duration

	DesignatedID   string
	DesignatedName string
	// TargetLocation is a "City, Country" label; empty picks a random city.
	TargetLocation   string
	TargetInstant    time.Time
	MinPresent       int
	MaxPresent       int
	ResolverAttempts int
}

// Dataset is everything the stores need, computed fully in memory.
type Dataset struct {
	Event      domain.TargetEvent
	Stays      []domain.Stay
	Rows       []domain.FlightRow
	People     []domain.Person
	Presence   PresenceReport
	Resolution Resolution
}

// BuildDataset runs the whole generation pipeline on one random stream.
//
// The order of the phases is fixed so that a seed reproduces the dataset:
// roster itineraries, target choice, presence adjustment, designated agent,
// storage order, then biographical records.
func BuildDataset(ctx context.Context, req BuildDatasetRequest, rng *randx.Stream) (_ *Dataset, err error) {
	defer obs.Time(ctx, "dataset.Build")(&err)

	if len(req.Roster) == 0 {
		return nil, fmt.Errorf("build dataset: %w", ErrEmptyRoster)
	}
	if len(req.Cities) < 2 {
		return nil, errors.New("build dataset: need at least two cities")
	}

	labels := make([]string, 0, len(req.Cities))
	labelSet := make(map[string]struct{}, len(req.Cities))
	for _, c := range req.Cities {
		labels = append(labels, c.Label())
		labelSet[c.Label()] = struct{}{}
	}

	if req.TargetLocation != "" {
		if _, ok := labelSet[req.TargetLocation]; !ok {
			return nil, fmt.Errorf("build dataset: target location %q is not a known city label", req.TargetLocation)
		}
	}

	gen := ItineraryGenerator{
		Window:          req.Window,
		Cities:          req.Cities,
		Estimator:       req.Estimator,
		MaxTrips:        req.MaxTrips,
		StartWindowDays: req.StartWindowDays,
	}

	pop := generatePopulation(ctx, gen, rng, req.Roster, req.DesignatedID)

	ev := domain.TargetEvent{Location: req.TargetLocation, At: req.TargetInstant.UTC().Truncate(time.Second)}
	if ev.Location == "" {
		ev.Location = randx.Pick(rng, labels)
	}
	log.Printf("op=dataset.target location=%q at=%s", ev.Location, domain.FormatISO(ev.At))

	controller := PresenceController{
		Window:       req.Window,
		Labels:       labels,
		Min:          req.MinPresent,
		Max:          req.MaxPresent,
		DesignatedID: req.DesignatedID,
	}
	presence := controller.Adjust(rng, pop, ev)

	resolver := SubjectResolver{
		Generator:   gen,
		Window:      req.Window,
		Labels:      labels,
		MaxAttempts: req.ResolverAttempts,
	}
	designated, resolution := resolver.Resolve(rng, req.DesignatedID, ev)
	pop.Add(designated)

	var flat []domain.Stay
	for _, id := range pop.IDs() {
		it, _ := pop.Get(id)
		flat = append(flat, it.Stays...)
	}

	ordered := OrderRandomizer{Window: req.Window, JitterSD: req.JitterSD}.Order(rng, flat)

	people := BiographyGenerator{
		DesignatedID:   req.DesignatedID,
		DesignatedName: req.DesignatedName,
	}.Generate(rng, pop.IDs())

	rows := make([]domain.FlightRow, 0, len(ordered))
	invalid := 0
	for _, s := range ordered {
		if err := s.Validate(req.Window); err != nil {
			invalid++
			log.Printf("op=dataset.validate err=%v", err)
		}
		rows = append(rows, domain.NewFlightRow(s))
	}
	log.Printf("op=dataset.rows agents=%d rows=%d invalid=%d", pop.Len(), len(rows), invalid)

	return &Dataset{
		Event:      ev,
		Stays:      ordered,
		Rows:       rows,
		People:     people,
		Presence:   presence,
		Resolution: resolution,
	}, nil
}

// generatePopulation builds roster itineraries in roster order. The
// designated agent is skipped here; it is resolved separately and added last.
func generatePopulation(ctx context.Context, gen ItineraryGenerator, rng *randx.Stream, roster []string, designatedID string) *domain.Population {
	defer obs.Time(ctx, "dataset.generatePopulation")(nil)

	pop := domain.NewPopulation()
	fallbacks := 0
	for _, id := range roster {
		if id == designatedID {
			log.Printf("op=dataset.roster agent=%s note=designated_in_roster_skipped", id)
			continue
		}
		if _, dup := pop.Get(id); dup {
			continue
		}

		it := gen.Collect(rng, id)
		if len(it.Stays) == 0 {
			it.Stays = []domain.Stay{gen.FallbackStay(rng, id)}
			fallbacks++
		}
		it.Sort()
		pop.Add(it)
	}

	log.Printf("op=dataset.roster agents=%d fallbacks=%d", pop.Len(), fallbacks)
	return pop
}
