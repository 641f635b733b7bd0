package distance

import (
	"github.com/golang/geo/s2"

	"itinerary-dataset/internal/domain"
)

const EarthRadiusKm = 6371.0

// HaversineProvider implements DistanceProvider on a spherical earth model.
//
// Results are memoized per label pair. The provider is not safe for concurrent
// use; the generation pipeline is single-threaded.
type HaversineProvider struct {
	memo map[string]float64
}

func NewHaversineProvider() *HaversineProvider {
	return &HaversineProvider{memo: make(map[string]float64)}
}

func (h *HaversineProvider) DistanceKm(a, b domain.Location) float64 {
	key := a.Label() + "|" + b.Label()
	if d, ok := h.memo[key]; ok {
		return d
	}

	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	d := p1.Distance(p2).Radians() * EarthRadiusKm

	h.memo[key] = d
	return d
}
