package services

import (
	"slices"
	"testing"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

func TestItineraryGeneratorInvariants(t *testing.T) {
	gen := testGenerator(t)
	w := gen.Window

	for seed := uint64(1); seed <= 200; seed++ {
		it := gen.Collect(randx.New(seed), "agent")

		if len(it.Stays) > gen.MaxTrips {
			t.Fatalf("seed %d: %d stays exceeds trip cap %d", seed, len(it.Stays), gen.MaxTrips)
		}

		for i, s := range it.Stays {
			if err := s.Validate(w); err != nil {
				t.Fatalf("seed %d stay %d: %v", seed, i, err)
			}
			if s.AgentID != "agent" {
				t.Fatalf("seed %d stay %d: agent %q", seed, i, s.AgentID)
			}
			if i == 0 {
				if s.Arrival.After(w.Start.Add(11 * 24 * time.Hour)) {
					t.Fatalf("seed %d: first arrival %s outside the start window", seed, s.Arrival)
				}
				continue
			}

			prev := it.Stays[i-1]
			if !prev.Departure.Before(s.Arrival) {
				t.Fatalf("seed %d stay %d: arrival %s not after previous departure %s",
					seed, i, s.Arrival, prev.Departure)
			}
			if s.Arrival.Minute()%15 != 0 || s.Arrival.Second() != 0 {
				t.Fatalf("seed %d stay %d: arrival %s not on a quarter hour", seed, i, s.Arrival)
			}
		}
	}
}

func TestItineraryGeneratorReproducible(t *testing.T) {
	gen := testGenerator(t)

	a := gen.Collect(randx.New(42), "x")
	b := gen.Collect(randx.New(42), "x")
	if !slices.Equal(a.Stays, b.Stays) {
		t.Fatalf("same seed produced different itineraries")
	}

	// The identifier only labels the output.
	c := gen.Collect(randx.New(42), "y")
	if len(c.Stays) != len(a.Stays) {
		t.Fatalf("expected %d stays, got %d", len(a.Stays), len(c.Stays))
	}
	for i := range c.Stays {
		got, want := c.Stays[i], a.Stays[i]
		if got.AgentID != "y" || got.Location != want.Location ||
			!got.Arrival.Equal(want.Arrival) || !got.Departure.Equal(want.Departure) {
			t.Fatalf("stay %d differs beyond the agent id", i)
		}
	}
}

func TestItineraryGeneratorEmptyWhenWindowTooShort(t *testing.T) {
	gen := testGenerator(t)
	gen.Window = domain.Window{Start: testStart, End: testStart.Add(time.Second)}

	for seed := uint64(1); seed <= 20; seed++ {
		it := gen.Collect(randx.New(seed), "agent")
		if len(it.Stays) != 0 {
			t.Fatalf("seed %d: expected no stays, got %d", seed, len(it.Stays))
		}
	}
}

func TestItineraryGeneratorTripCap(t *testing.T) {
	gen := testGenerator(t)
	gen.MaxTrips = 1

	for seed := uint64(1); seed <= 50; seed++ {
		if n := len(gen.Collect(randx.New(seed), "agent").Stays); n > 1 {
			t.Fatalf("seed %d: expected at most 1 stay, got %d", seed, n)
		}
	}
}

func TestFallbackStay(t *testing.T) {
	gen := testGenerator(t)

	for seed := uint64(1); seed <= 50; seed++ {
		s := gen.FallbackStay(randx.New(seed), "agent")
		if err := s.Validate(gen.Window); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if s.Duration() < 24*time.Hour-time.Second {
			t.Fatalf("seed %d: fallback stay %v shorter than a day", seed, s.Duration())
		}
	}
}

func TestSnapToQuarter(t *testing.T) {
	in := time.Date(2025, 10, 1, 13, 52, 41, 999, time.UTC)
	got := snapToQuarter(in, 15)
	want := time.Date(2025, 10, 1, 13, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
