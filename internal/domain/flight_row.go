package domain

import (
	"fmt"
	"time"
)

// ISOLayout is the persisted timestamp format: UTC, second precision, trailing Z.
const ISOLayout = "2006-01-02T15:04:05Z"

// Flattened projection of a stay as stored in the fly table.
type FlightRow struct {
	AgentSSN      string
	City          string
	ArrivalTime   string
	DepartureTime string
}

func NewFlightRow(s Stay) FlightRow {
	return FlightRow{
		AgentSSN:      s.AgentID,
		City:          s.Location,
		ArrivalTime:   FormatISO(s.Arrival),
		DepartureTime: FormatISO(s.Departure),
	}
}

// Stay parses the row back into a stay.
func (r FlightRow) Stay() (Stay, error) {
	arr, err := ParseISO(r.ArrivalTime)
	if err != nil {
		return Stay{}, fmt.Errorf("flight row %s: arrival: %w", r.AgentSSN, err)
	}
	dep, err := ParseISO(r.DepartureTime)
	if err != nil {
		return Stay{}, fmt.Errorf("flight row %s: departure: %w", r.AgentSSN, err)
	}
	return NewStay(r.AgentSSN, r.City, arr, dep), nil
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse iso timestamp %q: %w", s, err)
	}
	return t, nil
}
