package services

import (
	"slices"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

// OrderRandomizer decides the storage order of the flattened stays.
//
// Each stay gets a sort key of its arrival plus gaussian noise, clamped to the
// window. The result correlates with chronology without being chronological
// or grouped per agent. Stays themselves are never modified.
type OrderRandomizer struct {
	Window   domain.Window
	JitterSD time.Duration
}

type keyedStay struct {
	key  time.Time
	stay domain.Stay
}

// Order draws one gaussian per stay, in input order, and returns a new slice.
func (o OrderRandomizer) Order(rng *randx.Stream, stays []domain.Stay) []domain.Stay {
	keyed := o.keys(rng, stays)
	out := make([]domain.Stay, len(keyed))
	for i, k := range keyed {
		out[i] = k.stay
	}
	return out
}

func (o OrderRandomizer) keys(rng *randx.Stream, stays []domain.Stay) []keyedStay {
	keyed := make([]keyedStay, 0, len(stays))
	sdHours := o.JitterSD.Hours()
	for _, s := range stays {
		key := s.Arrival.Add(hoursToDuration(rng.Normal(0, sdHours)))
		keyed = append(keyed, keyedStay{key: o.Window.Clamp(key), stay: s})
	}

	slices.SortStableFunc(keyed, func(a, b keyedStay) int {
		return a.key.Compare(b.key)
	})
	return keyed
}
