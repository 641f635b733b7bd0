package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/geography"
	"itinerary-dataset/internal/randx"
)

const designatedID = "002-05-1849"

func testRequest(t *testing.T, roster []string) BuildDatasetRequest {
	return BuildDatasetRequest{
		Roster:           roster,
		Window:           testWindow(t),
		Cities:           geography.All(),
		Estimator:        testEstimator(),
		MaxTrips:         12,
		StartWindowDays:  10,
		JitterSD:         48 * time.Hour,
		DesignatedID:     designatedID,
		DesignatedName:   "Buckingham Web",
		TargetLocation:   dubai,
		TargetInstant:    testTarget,
		MinPresent:       5,
		MaxPresent:       10,
		ResolverAttempts: 500,
	}
}

func testRoster(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("300-%02d-%04d", i%100, i)
	}
	return out
}

func TestBuildDataset(t *testing.T) {
	roster := append(testRoster(60), "300-00-0000", designatedID)
	req := testRequest(t, roster)

	ds, err := BuildDataset(context.Background(), req, randx.New(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ds.People) != 61 {
		t.Fatalf("expected 61 people (60 unique + designated), got %d", len(ds.People))
	}
	last := ds.People[len(ds.People)-1]
	if last.SSN != designatedID || last.Name != "Buckingham Web" {
		t.Fatalf("expected designated person last, got %+v", last)
	}

	if len(ds.Rows) != len(ds.Stays) {
		t.Fatalf("rows %d and stays %d disagree", len(ds.Rows), len(ds.Stays))
	}

	present := map[string]bool{}
	agents := map[string]bool{}
	for i, s := range ds.Stays {
		if err := s.Validate(req.Window); err != nil {
			t.Fatalf("stay %d: %v", i, err)
		}
		if ds.Rows[i] != domain.NewFlightRow(s) {
			t.Fatalf("row %d does not match its stay", i)
		}
		agents[s.AgentID] = true
		if s.PresentAt(ds.Event.Location, ds.Event.At) {
			present[s.AgentID] = true
		}
	}

	if len(agents) != 61 {
		t.Fatalf("expected every agent to have stays, got %d agents", len(agents))
	}
	if !present[designatedID] {
		t.Fatalf("designated agent is not present at the event")
	}
	delete(present, designatedID)
	if len(present) != ds.Presence.Final {
		t.Fatalf("report says %d present, rows show %d", ds.Presence.Final, len(present))
	}
	if !ds.Presence.InRange(5, 10) {
		t.Fatalf("presence %d outside [5,10]", ds.Presence.Final)
	}
}

func TestBuildDatasetReproducible(t *testing.T) {
	req := testRequest(t, testRoster(25))

	a, err := BuildDataset(context.Background(), req, randx.New(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildDataset(context.Background(), req, randx.New(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(a.Rows, b.Rows) {
		t.Fatalf("same seed produced different rows")
	}
	if !slices.Equal(a.People, b.People) {
		t.Fatalf("same seed produced different people")
	}
}

func TestBuildDatasetRandomTarget(t *testing.T) {
	req := testRequest(t, testRoster(20))
	req.TargetLocation = ""

	ds, err := BuildDataset(context.Background(), req, randx.New(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := geography.LookupLabel(ds.Event.Location); err != nil {
		t.Fatalf("random target is not a known city: %v", err)
	}
}

func TestBuildDatasetErrors(t *testing.T) {
	empty := testRequest(t, nil)
	if _, err := BuildDataset(context.Background(), empty, randx.New(1)); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}

	unknown := testRequest(t, testRoster(5))
	unknown.TargetLocation = "Atlantis, Nowhere"
	if _, err := BuildDataset(context.Background(), unknown, randx.New(1)); err == nil {
		t.Fatalf("expected error for unknown target location")
	}
}
