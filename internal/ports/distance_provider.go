package ports

import "itinerary-dataset/internal/domain"

// Contract for computing great-circle distance between two locations.
// Implementations must be pure: the same pair always yields the same distance.
type DistanceProvider interface {
	// Return the distance between a and b in kilometers.
	DistanceKm(a, b domain.Location) float64
}
