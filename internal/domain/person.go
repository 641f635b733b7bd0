package domain

// Biographical record persisted to the who table, one per agent.
type Person struct {
	Name     string
	SSN      string
	HeightCm int
	EyeColor string
	WeightKg int
}
