package domain

// Mapping from agent to itinerary that remembers insertion order.
// Iteration order matters for reproducibility: every pass over the population
// consumes the shared random stream in IDs() order.
type Population struct {
	ids  []string
	byID map[string]Itinerary
}

func NewPopulation() *Population {
	return &Population{byID: make(map[string]Itinerary)}
}

// Add inserts or replaces the itinerary for its agent. New agents go last.
func (p *Population) Add(it Itinerary) {
	if _, ok := p.byID[it.AgentID]; !ok {
		p.ids = append(p.ids, it.AgentID)
	}
	p.byID[it.AgentID] = it
}

// Set replaces an existing itinerary; it is Add under a clearer name at mutation sites.
func (p *Population) Set(it Itinerary) { p.Add(it) }

func (p *Population) Get(agentID string) (Itinerary, bool) {
	it, ok := p.byID[agentID]
	return it, ok
}

// IDs returns the agents in insertion order. The slice is a copy.
func (p *Population) IDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

func (p *Population) Len() int { return len(p.ids) }
