package services

import (
	"testing"
	"time"

	"itinerary-dataset/internal/adapters/distance"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/geography"
)

var (
	testStart  = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	testEnd    = time.Date(2025, 11, 13, 14, 59, 59, 0, time.UTC)
	testTarget = time.Date(2025, 10, 8, 20, 37, 0, 0, time.UTC)
)

const dubai = "Dubai, United Arab Emirates"

func testWindow(t *testing.T) domain.Window {
	t.Helper()
	w, err := domain.NewWindow(testStart, testEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func testGenerator(t *testing.T) ItineraryGenerator {
	t.Helper()
	return ItineraryGenerator{
		Window:          testWindow(t),
		Cities:          geography.All(),
		Estimator:       testEstimator(),
		MaxTrips:        12,
		StartWindowDays: 10,
	}
}

func testEstimator() TravelTimeEstimator {
	return TravelTimeEstimator{
		Provider:      distance.NewHaversineProvider(),
		AvgSpeedKmh:   900,
		OverheadHours: 2,
	}
}

func stay(id, label string, arr, dep time.Time) domain.Stay {
	return domain.NewStay(id, label, arr, dep)
}

func at(day, hour int) time.Time {
	return time.Date(2025, 10, day, hour, 0, 0, 0, time.UTC)
}
