package dto

type CityResponse struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Label   string  `json:"label"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

type SummaryResponse struct {
	Stays         int    `json:"stays"`
	People        int    `json:"people"`
	Agents        int    `json:"agents"`
	FirstArrival  string `json:"first_arrival,omitempty"`
	LastDeparture string `json:"last_departure,omitempty"`
}
