package domain

// A named place an agent can stay at.
// Locations are defined once in a static table and never change; the Name is
// the identity, the Label is what gets persisted.
type Location struct {
	Name    string
	Country string
	Coordinates
}

// Label returns the persisted form of the location, e.g. "Dubai, United Arab Emirates".
func (l Location) Label() string {
	return l.Name + ", " + l.Country
}
