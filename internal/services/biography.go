package services

import (
	"math"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/randx"
)

var (
	firstNames = []string{
		"Alex", "Jamie", "Taylor", "Jordan", "Casey", "Morgan", "Avery", "Riley", "Parker", "Quinn",
		"Sam", "Charlie", "Cameron", "Drew", "Rowan", "Reese", "Hayden", "Kai", "Sasha", "Elliot",
		"Noah", "Liam", "Mason", "Ethan", "Logan", "Lucas", "Oliver", "Aiden", "Carter", "Grayson",
		"Hannah", "Olivia", "Emma", "Ava", "Isabella", "Sophia", "Mia", "Charlotte", "Amelia", "Harper",
		"Benjamin", "William", "James", "Henry", "Jacob", "Michael", "Daniel", "Matthew", "Joseph", "David",
		"Zoe", "Chloe", "Lily", "Madison", "Emily", "Aria", "Scarlett", "Victoria", "Grace", "Nora",
		"Ian", "Victor", "Gabe", "Marcus", "Leo", "Felix", "Simon", "Owen", "Evan", "Adam",
		"Brandon", "Natalie", "Ruby", "Josie", "Maya", "Ivy", "Alice", "Elsa", "Irene", "June",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Rodriguez", "Wilson",
		"Martinez", "Anderson", "Taylor", "Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
		"Lopez", "Lee", "Gonzalez", "Harris", "Clark", "Lewis", "Robinson", "Walker", "Perez", "Hall",
		"Young", "Allen", "Sanchez", "Wright", "King", "Scott", "Green", "Baker", "Adams", "Nelson",
		"Hill", "Ramirez", "Campbell", "Mitchell", "Roberts", "Carter", "Phillips", "Evans", "Turner", "Torres",
		"Parker", "Collins", "Edwards", "Stewart", "Flores", "Morris", "Nguyen", "Murphy", "Rivera", "Cook",
		"Rogers", "Morgan", "Peterson", "Cooper", "Reed", "Bailey", "Bell", "Gomez", "Kelly", "Howard",
		"Ward", "Cox", "Diaz", "Richardson", "Wood", "Watson", "Brooks", "Bennett", "Gray", "James",
		"Reyes", "Cruz", "Hughes", "Price", "Myers", "Long", "Foster", "Sanders", "Ross", "Morales",
	}
	eyeColors = []string{"brown", "blue", "green", "hazel", "gray", "amber"}
)

// BiographyGenerator produces the who-table records. Names are unique while
// the roster fits in the first x last name grid; past that they repeat.
type BiographyGenerator struct {
	DesignatedID   string
	DesignatedName string
}

func (b BiographyGenerator) Generate(rng *randx.Stream, agentIDs []string) []domain.Person {
	names := uniqueNames(rng, len(agentIDs))

	people := make([]domain.Person, 0, len(agentIDs))
	for i, id := range agentIDs {
		p := domain.Person{
			Name:     names[i],
			SSN:      id,
			HeightCm: clampedGauss(rng, 175, 10, 150, 200),
			WeightKg: clampedGauss(rng, 75, 12, 50, 130),
			EyeColor: randx.Pick(rng, eyeColors),
		}
		if id == b.DesignatedID && b.DesignatedName != "" {
			p.Name = b.DesignatedName
		}
		people = append(people, p)
	}
	return people
}

func uniqueNames(rng *randx.Stream, n int) []string {
	all := make([]string, 0, len(firstNames)*len(lastNames))
	for _, f := range firstNames {
		for _, l := range lastNames {
			all = append(all, f+" "+l)
		}
	}

	out := make([]string, 0, n)
	for len(out) < n {
		out = append(out, randx.Sample(rng, all, n-len(out))...)
	}
	return out
}

func clampedGauss(rng *randx.Stream, mu, sd float64, lo, hi int) int {
	v := int(math.Round(rng.Normal(mu, sd)))
	return max(lo, min(hi, v))
}
