package domain

import "time"

// The (location, instant) pair presence is measured against.
type TargetEvent struct {
	Location string
	At       time.Time
}
