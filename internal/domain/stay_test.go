package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWindow = Window{
	Start: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 11, 13, 14, 59, 59, 0, time.UTC),
}

func TestStaySpansIsHalfOpen(t *testing.T) {
	arr := time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC)
	dep := arr.Add(10 * time.Hour)
	s := NewStay("a", "Dubai, United Arab Emirates", arr, dep)

	assert.True(t, s.Spans(arr))
	assert.True(t, s.Spans(dep.Add(-time.Second)))
	assert.False(t, s.Spans(dep))
	assert.False(t, s.Spans(arr.Add(-time.Second)))

	assert.True(t, s.PresentAt("Dubai, United Arab Emirates", arr))
	assert.False(t, s.PresentAt("Paris, France", arr))
}

func TestNewStayTruncatesToSeconds(t *testing.T) {
	arr := time.Date(2025, 10, 8, 12, 0, 1, 999_000_000, time.UTC)
	s := NewStay("a", "x", arr, arr.Add(time.Hour))

	assert.Equal(t, 0, s.Arrival.Nanosecond())
	assert.Equal(t, 1, s.Arrival.Second())
}

func TestStayWithLocationLeavesOriginalUntouched(t *testing.T) {
	arr := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	s := NewStay("a", "Paris, France", arr, arr.Add(time.Hour))

	moved := s.WithLocation("Rome, Italy")

	assert.Equal(t, "Paris, France", s.Location)
	assert.Equal(t, "Rome, Italy", moved.Location)
	assert.Equal(t, s.Arrival, moved.Arrival)
	assert.Equal(t, s.Departure, moved.Departure)
}

func TestStayValidate(t *testing.T) {
	arr := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, NewStay("a", "x", arr, arr.Add(time.Hour)).Validate(testWindow))
	assert.Error(t, NewStay("a", "x", arr, arr).Validate(testWindow))
	assert.Error(t, NewStay("a", "x", testWindow.Start.Add(-time.Hour), arr).Validate(testWindow))
	assert.Error(t, NewStay("a", "x", arr, testWindow.End.Add(time.Second)).Validate(testWindow))
}

func TestWindowClamp(t *testing.T) {
	assert.Equal(t, testWindow.Start, testWindow.Clamp(testWindow.Start.Add(-48*time.Hour)))
	assert.Equal(t, testWindow.End, testWindow.Clamp(testWindow.End.Add(time.Minute)))

	mid := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mid, testWindow.Clamp(mid))
}

func TestNewWindowRejectsInvertedBounds(t *testing.T) {
	_, err := NewWindow(testWindow.End, testWindow.Start)
	assert.Error(t, err)
}

func TestFlightRowRoundTrip(t *testing.T) {
	arr := time.Date(2025, 9, 3, 13, 22, 0, 0, time.UTC)
	s := NewStay("001-01-0001", "Tokyo, Japan", arr, arr.Add(49*time.Hour+17*time.Second))

	row := NewFlightRow(s)
	assert.Equal(t, "2025-09-03T13:22:00Z", row.ArrivalTime)
	assert.Equal(t, "2025-09-05T14:22:17Z", row.DepartureTime)

	back, err := row.Stay()
	require.NoError(t, err)
	assert.True(t, back.Arrival.Equal(s.Arrival))
	assert.True(t, back.Departure.Equal(s.Departure))
}

func TestParseISORejectsOffsets(t *testing.T) {
	_, err := ParseISO("2025-09-03T13:22:00+02:00")
	assert.Error(t, err)
}
