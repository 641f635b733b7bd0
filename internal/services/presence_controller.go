package services

import (
	"log"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

const (
	presenceMarginMinHours = 6
	presenceMarginMaxHours = 48
	recoveryMargin         = 8 * time.Hour
	relabelAttempts        = 20
)

// PresenceController steers how many agents are co-located with the event.
//
// It counts non-designated agents whose itinerary has a stay at the event
// location spanning the event instant, then inserts or relabels stays until
// the count lies in [Min, Max]. This is a bounded best-effort heuristic:
// a roster too small to reach Min is logged and left short.
type PresenceController struct {
	Window       domain.Window
	Labels       []string
	Min          int
	Max          int
	DesignatedID string
}

type PresenceReport struct {
	Initial   int
	Added     int
	Removed   int
	Recovered int
	Final     int
}

// InRange reports whether the final count met the target bounds.
func (r PresenceReport) InRange(min, max int) bool {
	return r.Final >= min && r.Final <= max
}

func (c PresenceController) Adjust(rng *randx.Stream, pop *domain.Population, ev domain.TargetEvent) PresenceReport {
	var report PresenceReport

	present := c.presentAgents(pop, ev)
	report.Initial = len(present)
	log.Printf("op=presence.measure location=%q at=%s present=%d", ev.Location, domain.FormatISO(ev.At), report.Initial)

	count := report.Initial
	if count < c.Min {
		report.Added = c.insert(rng, pop, ev, c.Min-count, c.randomMargins(rng))
		count += report.Added
		log.Printf("op=presence.insert added=%d present=%d", report.Added, count)
	}

	if count > c.Max {
		report.Removed = c.remove(rng, pop, ev, count-c.Max)
		count -= report.Removed
		log.Printf("op=presence.remove removed=%d present=%d", report.Removed, count)
	}

	count = len(c.presentAgents(pop, ev))
	if count < c.Min {
		fixed := func() (time.Duration, time.Duration) { return recoveryMargin, recoveryMargin }
		report.Recovered = c.insert(rng, pop, ev, c.Min-count, fixed)
		count += report.Recovered
		log.Printf("op=presence.recover added=%d present=%d", report.Recovered, count)
	}

	report.Final = len(c.presentAgents(pop, ev))
	if !report.InRange(c.Min, c.Max) {
		log.Printf("op=presence.final present=%d target=[%d,%d] note=out_of_range population=%d",
			report.Final, c.Min, c.Max, pop.Len())
	} else {
		log.Printf("op=presence.final present=%d target=[%d,%d]", report.Final, c.Min, c.Max)
	}
	return report
}

// presentAgents lists non-designated agents present at the event, in population order.
func (c PresenceController) presentAgents(pop *domain.Population, ev domain.TargetEvent) []string {
	var out []string
	for _, id := range pop.IDs() {
		if id == c.DesignatedID {
			continue
		}
		it, _ := pop.Get(id)
		if _, ok := it.PresentAt(ev.Location, ev.At); ok {
			out = append(out, id)
		}
	}
	return out
}

func (c PresenceController) absentAgents(pop *domain.Population, ev domain.TargetEvent) []string {
	var out []string
	for _, id := range pop.IDs() {
		if id == c.DesignatedID {
			continue
		}
		it, _ := pop.Get(id)
		if _, ok := it.PresentAt(ev.Location, ev.At); !ok {
			out = append(out, id)
		}
	}
	return out
}

type marginFunc func() (pre, post time.Duration)

// randomMargins returns a marginFunc drawing fresh pre/post margins per agent.
func (c PresenceController) randomMargins(rng *randx.Stream) marginFunc {
	return func() (time.Duration, time.Duration) {
		pre := hoursToDuration(rng.Uniform(presenceMarginMinHours, presenceMarginMaxHours))
		post := hoursToDuration(rng.Uniform(presenceMarginMinHours, presenceMarginMaxHours))
		return pre, post
	}
}

// insert makes up to need absent agents present. Each selected agent loses
// whatever stay spanned the instant and gains a stay at the event location.
func (c PresenceController) insert(rng *randx.Stream, pop *domain.Population, ev domain.TargetEvent, need int, margins marginFunc) int {
	candidates := randx.Sample(rng, c.absentAgents(pop, ev), need)
	if len(candidates) < need {
		log.Printf("op=presence.insert note=insufficient_candidates need=%d available=%d", need, len(candidates))
	}

	rules := repairRules{attempts: insertRepairAttempts, pinned: pinTarget(ev)}

	added := 0
	for _, id := range candidates {
		it, _ := pop.Get(id)

		kept := make([]domain.Stay, 0, len(it.Stays)+1)
		for _, s := range it.Stays {
			if !s.Spans(ev.At) {
				kept = append(kept, s)
			}
		}

		pre, post := margins()
		arrival := c.Window.Clamp(ev.At.Add(-pre))
		departure := c.Window.Clamp(ev.At.Add(post))
		kept = append(kept, domain.NewStay(id, ev.Location, arrival, departure))

		it.Stays = kept
		repairAdjacent(rng, &it, c.Labels, rules)
		pop.Set(it)
		added++
	}
	return added
}

// remove relabels the spanning event stay of excess present agents.
func (c PresenceController) remove(rng *randx.Stream, pop *domain.Population, ev domain.TargetEvent, excess int) int {
	chosen := randx.Sample(rng, c.presentAgents(pop, ev), excess)
	rules := repairRules{attempts: removeRepairAttempts, allowed: forbidTarget(ev)}

	removed := 0
	for _, id := range chosen {
		it, _ := pop.Get(id)
		it.Sort()

		for i, s := range it.Stays {
			if !s.PresentAt(ev.Location, ev.At) {
				continue
			}
			alt, ok := pickReplacementLabel(rng, it.Stays, i, c.Labels, repairRules{attempts: relabelAttempts, allowed: forbidTarget(ev)})
			if !ok {
				log.Printf("op=presence.remove agent=%s note=relabel_exhausted", id)
				continue
			}
			it.Stays[i] = s.WithLocation(alt)
		}

		repairAdjacent(rng, &it, c.Labels, rules)
		pop.Set(it)
		if _, still := it.PresentAt(ev.Location, ev.At); !still {
			removed++
		}
	}
	return removed
}
