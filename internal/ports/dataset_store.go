package ports

import (
	"context"
	"time"

	"itinerary-dataset/internal/domain"
)

// Port: the sink for a freshly generated dataset.
type DatasetWriter interface {
	// Replace whatever the store holds with rows (in storage order) and people.
	ReplaceDataset(ctx context.Context, rows []domain.FlightRow, people []domain.Person) error
}

// Filter for listing stored fly rows. Empty fields do not filter.
type StayFilter struct {
	AgentSSN string
	City     string
	Limit    int
	Offset   int
}

// A fly row together with its storage id.
type StoredRow struct {
	ID int64
	domain.FlightRow
}

type DatasetSummary struct {
	Stays         int
	People        int
	Agents        int
	FirstArrival  string
	LastDeparture string
}

// Port: read-side queries used by the HTTP API and the dbtool.
type DatasetReader interface {
	ListStays(ctx context.Context, f StayFilter) ([]StoredRow, error)
	CountStays(ctx context.Context, f StayFilter) (int, error)
	GetPerson(ctx context.Context, ssn string) (*domain.Person, error)
	ListPeople(ctx context.Context) ([]domain.Person, error)
	// Return the SSNs with a stay at city spanning at, sorted.
	PresentAt(ctx context.Context, city string, at time.Time) ([]string, error)
	Summary(ctx context.Context) (DatasetSummary, error)
}
