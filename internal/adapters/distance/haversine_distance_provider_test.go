package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-dataset/internal/geography"
)

func TestHaversineKnownDistances(t *testing.T) {
	london, err := geography.Lookup("London")
	require.NoError(t, err)
	paris, err := geography.Lookup("Paris")
	require.NoError(t, err)
	sydney, err := geography.Lookup("Sydney")
	require.NoError(t, err)

	h := NewHaversineProvider()

	assert.InDelta(t, 343.5, h.DistanceKm(london, paris), 2)
	assert.InDelta(t, 16990, h.DistanceKm(london, sydney), 50)
	assert.InDelta(t, h.DistanceKm(london, paris), h.DistanceKm(paris, london), 1e-9)
	assert.Zero(t, h.DistanceKm(paris, paris))

	// memoized value is returned on the second call
	assert.Equal(t, h.DistanceKm(london, sydney), h.DistanceKm(london, sydney))
}

func TestMockDistanceProvider(t *testing.T) {
	london, _ := geography.Lookup("London")
	paris, _ := geography.Lookup("Paris")

	p := NewMockDistanceProvider([]MockPair{{From: "London", To: "Paris", Km: 900}})
	p.Default = 1800

	assert.Equal(t, 900.0, p.DistanceKm(london, paris))
	assert.Equal(t, 1800.0, p.DistanceKm(paris, london))
}
