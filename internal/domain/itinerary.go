package domain

import (
	"slices"
	"time"
)

// Ordered sequence of stays belonging to one agent.
// Adjacency (no two neighbouring stays at the same location) is evaluated
// on the arrival-sorted sequence, so callers Sort before checking it.
type Itinerary struct {
	AgentID string
	Stays   []Stay
}

// Sort orders the stays by arrival. Equal arrivals keep their relative order.
func (it *Itinerary) Sort() {
	slices.SortStableFunc(it.Stays, func(a, b Stay) int {
		return a.Arrival.Compare(b.Arrival)
	})
}

// PresentAt returns the index of the first stay at label spanning t.
func (it Itinerary) PresentAt(label string, t time.Time) (int, bool) {
	for i, s := range it.Stays {
		if s.PresentAt(label, t) {
			return i, true
		}
	}
	return -1, false
}

// AdjacentDuplicates counts neighbouring stays sharing a location label.
func (it Itinerary) AdjacentDuplicates() int {
	n := 0
	for i := 1; i < len(it.Stays); i++ {
		if it.Stays[i].Location == it.Stays[i-1].Location {
			n++
		}
	}
	return n
}

func (it Itinerary) Clone() Itinerary {
	return Itinerary{AgentID: it.AgentID, Stays: slices.Clone(it.Stays)}
}
