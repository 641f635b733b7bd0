package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-dataset/internal/adapters/repositories"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/ports"
)

func seedDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.sqlite")

	conn, err := repositories.CreateSqliteFile(path)
	require.NoError(t, err)
	defer conn.Close()

	rows := []domain.FlightRow{
		{AgentSSN: "b", City: "Rome, Italy", ArrivalTime: "2025-09-03T00:00:00Z", DepartureTime: "2025-09-04T00:00:00Z"},
		{AgentSSN: "a", City: "Cairo, Egypt", ArrivalTime: "2025-09-01T06:00:00Z", DepartureTime: "2025-09-02T00:00:00Z"},
	}
	people := []domain.Person{
		{Name: "A", SSN: "a", HeightCm: 170, EyeColor: "blue", WeightKg: 60},
		{Name: "B", SSN: "b", HeightCm: 180, EyeColor: "brown", WeightKg: 90},
	}
	require.NoError(t, repositories.NewSqliteDatasetRepository(conn).ReplaceDataset(context.Background(), rows, people))
	return path
}

type captureWriter struct {
	rows   []domain.FlightRow
	people []domain.Person
}

func (c *captureWriter) ReplaceDataset(_ context.Context, rows []domain.FlightRow, people []domain.Person) error {
	c.rows, c.people = rows, people
	return nil
}

func TestExportKeepsStorageOrder(t *testing.T) {
	src, err := openDataset(seedDataset(t))
	require.NoError(t, err)
	defer src.DB.Close()

	dst := &captureWriter{}
	n, err := export(context.Background(), src, dst)
	require.NoError(t, err)

	assert.Equal(t, ports.DatasetSummary{Stays: 2, People: 2}, n)
	require.Len(t, dst.rows, 2)
	assert.Equal(t, "b", dst.rows[0].AgentSSN)
	assert.Equal(t, "a", dst.rows[1].AgentSSN)
}

func TestSummaryCommand(t *testing.T) {
	path := seedDataset(t)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"summary", "--sqlite", path})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "stays:          2")
	assert.Contains(t, out.String(), "first arrival:  2025-09-01T06:00:00Z")
}

func TestExportRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--sqlite", seedDataset(t), "--database-url", ""})

	assert.ErrorContains(t, root.Execute(), "DATABASE_URL")
}

func TestOpenDatasetMissing(t *testing.T) {
	_, err := openDataset(filepath.Join(t.TempDir(), "absent.sqlite"))
	assert.Error(t, err)
}
