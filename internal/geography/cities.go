// Package geography holds the static table of cities agents travel between.
package geography

import (
	"errors"
	"fmt"

	"itinerary-dataset/internal/domain"
)

var ErrUnknownLocation = errors.New("unknown location")

// Order is significant: random city picks index into this slice, so reordering
// it changes every generated dataset for a given seed.
var cities = []domain.Location{
	{Name: "New York", Country: "United States", Coordinates: domain.Coordinates{Lat: 40.7128, Lon: -74.0060}},
	{Name: "London", Country: "United Kingdom", Coordinates: domain.Coordinates{Lat: 51.5074, Lon: -0.1278}},
	{Name: "Paris", Country: "France", Coordinates: domain.Coordinates{Lat: 48.8566, Lon: 2.3522}},
	{Name: "Moscow", Country: "Russia", Coordinates: domain.Coordinates{Lat: 55.7558, Lon: 37.6173}},
	{Name: "Beijing", Country: "China", Coordinates: domain.Coordinates{Lat: 39.9042, Lon: 116.4074}},
	{Name: "Shanghai", Country: "China", Coordinates: domain.Coordinates{Lat: 31.2304, Lon: 121.4737}},
	{Name: "Dubai", Country: "United Arab Emirates", Coordinates: domain.Coordinates{Lat: 25.2048, Lon: 55.2708}},
	{Name: "Istanbul", Country: "Turkey", Coordinates: domain.Coordinates{Lat: 41.0082, Lon: 28.9784}},
	{Name: "Tokyo", Country: "Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}},
	{Name: "Hong Kong", Country: "China", Coordinates: domain.Coordinates{Lat: 22.3193, Lon: 114.1694}},
	{Name: "Sao Paulo", Country: "Brazil", Coordinates: domain.Coordinates{Lat: -23.5505, Lon: -46.6333}},
	{Name: "Mexico City", Country: "Mexico", Coordinates: domain.Coordinates{Lat: 19.4326, Lon: -99.1332}},
	{Name: "Los Angeles", Country: "United States", Coordinates: domain.Coordinates{Lat: 34.0522, Lon: -118.2437}},
	{Name: "Mumbai", Country: "India", Coordinates: domain.Coordinates{Lat: 19.0760, Lon: 72.8777}},
	{Name: "Cairo", Country: "Egypt", Coordinates: domain.Coordinates{Lat: 30.0444, Lon: 31.2357}},
	{Name: "Berlin", Country: "Germany", Coordinates: domain.Coordinates{Lat: 52.5200, Lon: 13.4050}},
	{Name: "Singapore", Country: "Singapore", Coordinates: domain.Coordinates{Lat: 1.3521, Lon: 103.8198}},
	{Name: "Sydney", Country: "Australia", Coordinates: domain.Coordinates{Lat: -33.8688, Lon: 151.2093}},
	{Name: "Rome", Country: "Italy", Coordinates: domain.Coordinates{Lat: 41.9028, Lon: 12.4964}},
	{Name: "Seoul", Country: "South Korea", Coordinates: domain.Coordinates{Lat: 37.5665, Lon: 126.9780}},
}

var (
	byName  = make(map[string]domain.Location, len(cities))
	byLabel = make(map[string]domain.Location, len(cities))
)

func init() {
	for _, c := range cities {
		byName[c.Name] = c
		byLabel[c.Label()] = c
	}
}

// All returns a copy of the table in its canonical order.
func All() []domain.Location {
	out := make([]domain.Location, len(cities))
	copy(out, cities)
	return out
}

func Names() []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.Name)
	}
	return out
}

func Labels() []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.Label())
	}
	return out
}

func Lookup(name string) (domain.Location, error) {
	c, ok := byName[name]
	if !ok {
		return domain.Location{}, fmt.Errorf("lookup city %q: %w", name, ErrUnknownLocation)
	}
	return c, nil
}

// LookupLabel resolves a persisted "City, Country" label.
func LookupLabel(label string) (domain.Location, error) {
	c, ok := byLabel[label]
	if !ok {
		return domain.Location{}, fmt.Errorf("lookup label %q: %w", label, ErrUnknownLocation)
	}
	return c, nil
}
