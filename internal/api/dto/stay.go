package dto

type StayResponse struct {
	ID            int64  `json:"id"`
	AgentSSN      string `json:"agent_ssn"`
	City          string `json:"city"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

type ListStaysResponse struct {
	Stays    []StayResponse `json:"stays"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int            `json:"total"`
	HasNext  bool           `json:"has_next"`
}

type PresenceResponse struct {
	City   string   `json:"city"`
	At     string   `json:"at"`
	Agents []string `json:"agents"`
	Count  int      `json:"count"`
}
