package services

import (
	"log"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

const (
	insertRepairAttempts = 10
	removeRepairAttempts = 20
)

// repairRules tunes adjacency repair for the pass that calls it.
// pinned stays are never relabeled; allowed vetoes replacement labels.
// A nil func means "no constraint".
type repairRules struct {
	attempts int
	pinned   func(domain.Stay) bool
	allowed  func(s domain.Stay, label string) bool
}

// pinTarget keeps the stay that provides presence at the event.
func pinTarget(ev domain.TargetEvent) func(domain.Stay) bool {
	return func(s domain.Stay) bool { return s.PresentAt(ev.Location, ev.At) }
}

// forbidTarget stops a relabel from re-creating presence at the event.
func forbidTarget(ev domain.TargetEvent) func(domain.Stay, string) bool {
	return func(s domain.Stay, label string) bool {
		return !(label == ev.Location && s.Spans(ev.At))
	}
}

// repairAdjacent sorts the itinerary and relabels one stay of every
// neighbouring pair that shares a location. It returns the number of
// duplicates it had to leave in place.
func repairAdjacent(rng *randx.Stream, it *domain.Itinerary, labels []string, rules repairRules) int {
	it.Sort()
	stays := it.Stays
	unresolved := 0

	for i := 1; i < len(stays); i++ {
		if stays[i].Location != stays[i-1].Location {
			continue
		}

		j := i
		if rules.pinned != nil && rules.pinned(stays[i]) {
			j = i - 1
			if rules.pinned(stays[j]) {
				unresolved++
				continue
			}
		}

		alt, ok := pickReplacementLabel(rng, stays, j, labels, rules)
		if !ok {
			unresolved++
			continue
		}
		stays[j] = stays[j].WithLocation(alt)
	}

	if unresolved > 0 {
		log.Printf("op=repair agent=%s unresolved_duplicates=%d", it.AgentID, unresolved)
	}
	return unresolved
}

// pickReplacementLabel draws labels until one differs from the stay and both
// of its neighbours and passes the rules, giving up after rules.attempts draws.
func pickReplacementLabel(rng *randx.Stream, stays []domain.Stay, j int, labels []string, rules repairRules) (string, bool) {
	for attempt := 0; attempt < rules.attempts; attempt++ {
		alt := randx.Pick(rng, labels)
		if alt == stays[j].Location {
			continue
		}
		if j > 0 && alt == stays[j-1].Location {
			continue
		}
		if j+1 < len(stays) && alt == stays[j+1].Location {
			continue
		}
		if rules.allowed != nil && !rules.allowed(stays[j], alt) {
			continue
		}
		return alt, true
	}
	return "", false
}
