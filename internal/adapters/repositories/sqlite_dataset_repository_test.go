package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/ports"
)

func testRows() []domain.FlightRow {
	return []domain.FlightRow{
		{AgentSSN: "001-01-0001", City: "Dubai, AE", ArrivalTime: "2025-10-08T10:00:00Z", DepartureTime: "2025-10-09T10:00:00Z"},
		{AgentSSN: "001-01-0002", City: "Paris, FR", ArrivalTime: "2025-09-02T00:00:00Z", DepartureTime: "2025-09-05T12:30:00Z"},
		{AgentSSN: "001-01-0002", City: "Dubai, AE", ArrivalTime: "2025-10-08T20:37:00Z", DepartureTime: "2025-10-10T00:00:00Z"},
		{AgentSSN: "001-01-0003", City: "Dubai, AE", ArrivalTime: "2025-10-07T00:00:00Z", DepartureTime: "2025-10-08T20:37:00Z"},
	}
}

func testPeople() []domain.Person {
	return []domain.Person{
		{Name: "Ada Lane", SSN: "001-01-0001", HeightCm: 170, EyeColor: "Brown", WeightKg: 70},
		{Name: "Bo Reyes", SSN: "001-01-0002", HeightCm: 181, EyeColor: "Blue", WeightKg: 82},
		{Name: "Cy Moore", SSN: "001-01-0003", HeightCm: 165, EyeColor: "Green", WeightKg: 60},
	}
}

func newTestRepo(t *testing.T) *SqliteDatasetRepository {
	t.Helper()

	conn, err := CreateSqliteFile(filepath.Join(t.TempDir(), "fly.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := NewSqliteDatasetRepository(conn)
	require.NoError(t, repo.ReplaceDataset(context.Background(), testRows(), testPeople()))
	return repo
}

func TestSqliteDatasetRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.ListStays(ctx, ports.StayFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 4)

	for i, want := range testRows() {
		assert.Equal(t, want, stored[i].FlightRow, "row %d keeps storage order", i)
		assert.Equal(t, int64(i+1), stored[i].ID)

		s, err := stored[i].Stay()
		require.NoError(t, err)
		assert.Equal(t, want, domain.NewFlightRow(s))
	}

	people, err := repo.ListPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPeople(), people)
}

func TestSqliteDatasetRepository_Filters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	f := ports.StayFilter{City: "Dubai, AE"}
	n, err := repo.CountStays(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	f.Limit, f.Offset = 2, 1
	page, err := repo.ListStays(ctx, f)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "001-01-0002", page[0].AgentSSN)
	assert.Equal(t, "001-01-0003", page[1].AgentSSN)

	byAgent, err := repo.ListStays(ctx, ports.StayFilter{AgentSSN: "001-01-0002"})
	require.NoError(t, err)
	assert.Len(t, byAgent, 2)
}

func TestSqliteDatasetRepository_PresentAt(t *testing.T) {
	repo := newTestRepo(t)

	at := time.Date(2025, 10, 8, 20, 37, 0, 0, time.UTC)
	ids, err := repo.PresentAt(context.Background(), "Dubai, AE", at)
	require.NoError(t, err)

	// Arrival at the instant counts; departure at the instant does not.
	assert.Equal(t, []string{"001-01-0001", "001-01-0002"}, ids)

	none, err := repo.PresentAt(context.Background(), "Lima, PE", at)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSqliteDatasetRepository_GetPerson(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p, err := repo.GetPerson(ctx, "001-01-0003")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Cy Moore", p.Name)

	missing, err := repo.GetPerson(ctx, "999-99-9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSqliteDatasetRepository_Summary(t *testing.T) {
	repo := newTestRepo(t)

	sum, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.DatasetSummary{
		Stays:         4,
		People:        3,
		Agents:        3,
		FirstArrival:  "2025-09-02T00:00:00Z",
		LastDeparture: "2025-10-10T00:00:00Z",
	}, sum)
}

func TestSqliteDatasetRepository_ReplaceDiscardsPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rows := testRows()[:1]
	people := testPeople()[:1]
	require.NoError(t, repo.ReplaceDataset(ctx, rows, people))

	n, err := repo.CountStays(ctx, ports.StayFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.ListPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, people, all)
}

func TestSqliteDatasetRepository_DuplicateSSNRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	people := append(testPeople(), testPeople()[0])
	err := repo.ReplaceDataset(ctx, testRows()[:1], people)
	require.Error(t, err)

	// The failed replace leaves the previous dataset intact.
	n, err := repo.CountStays(ctx, ports.StayFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCreateSqliteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fly.db")
	require.NoError(t, os.WriteFile(path, []byte("not a database"), 0o644))

	conn, err := CreateSqliteFile(path)
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM fly`).Scan(&n))
	assert.Zero(t, n)
}
