package distance

import "itinerary-dataset/internal/domain"

type MockPair struct {
	From, To string
	Km       float64
}

// MockDistanceProvider serves fixed distances keyed by location name.
// Unknown pairs resolve to Default, which keeps estimator tests total.
type MockDistanceProvider struct {
	m       map[string]float64
	Default float64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) DistanceKm(a, b domain.Location) float64 {
	d, ok := p.m[a.Name+"|"+b.Name]
	if !ok {
		return p.Default
	}
	return d
}
