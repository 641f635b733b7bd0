package dto

type PersonResponse struct {
	Name     string `json:"name"`
	SSN      string `json:"ssn"`
	HeightCm int    `json:"height_cm"`
	EyeColor string `json:"eye_color"`
	WeightKg int    `json:"weight_kg"`
}

type ListPeopleResponse struct {
	People []PersonResponse `json:"people"`
}
