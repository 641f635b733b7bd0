package domain

import (
	"fmt"
	"time"
)

// Inclusive time range every generated stay must fall into.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, fmt.Errorf("new window: start %s must be before end %s", FormatISO(start), FormatISO(end))
	}
	return Window{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t lies within [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Clamp collapses values outside the window onto the nearest bound.
func (w Window) Clamp(t time.Time) time.Time {
	if t.Before(w.Start) {
		return w.Start
	}
	if t.After(w.End) {
		return w.End
	}
	return t
}
