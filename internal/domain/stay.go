package domain

import (
	"fmt"
	"time"
)

// Represents one contiguous interval an agent spends at one location.
//
// Stay is a value type: relabeling produces a new Stay via WithLocation and the
// caller replaces the old value at its index. Times are kept at second precision
// so that the persisted ISO strings parse back to the same instants.
type Stay struct {
	AgentID   string
	Location  string
	Arrival   time.Time
	Departure time.Time
}

func NewStay(agentID, location string, arrival, departure time.Time) Stay {
	return Stay{
		AgentID:   agentID,
		Location:  location,
		Arrival:   arrival.UTC().Truncate(time.Second),
		Departure: departure.UTC().Truncate(time.Second),
	}
}

// Spans reports whether t falls within [Arrival, Departure).
func (s Stay) Spans(t time.Time) bool {
	return !t.Before(s.Arrival) && t.Before(s.Departure)
}

// PresentAt reports whether the stay is at label and spans t.
func (s Stay) PresentAt(label string, t time.Time) bool {
	return s.Location == label && s.Spans(t)
}

// WithLocation returns a copy of the stay relabeled to another location.
func (s Stay) WithLocation(label string) Stay {
	s.Location = label
	return s
}

func (s Stay) Duration() time.Duration {
	return s.Departure.Sub(s.Arrival)
}

// Validate checks the stay invariants against the generation window.
func (s Stay) Validate(w Window) error {
	if !s.Arrival.Before(s.Departure) {
		return fmt.Errorf("stay %s@%s: arrival %s not before departure %s",
			s.AgentID, s.Location, FormatISO(s.Arrival), FormatISO(s.Departure))
	}
	if !w.Contains(s.Arrival) || !w.Contains(s.Departure) {
		return fmt.Errorf("stay %s@%s: interval %s..%s outside window",
			s.AgentID, s.Location, FormatISO(s.Arrival), FormatISO(s.Departure))
	}
	return nil
}
