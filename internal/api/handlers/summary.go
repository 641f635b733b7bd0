package handlers

import (
	"log"
	"net/http"

	"itinerary-dataset/internal/api/dto"
	"itinerary-dataset/internal/ports"
)

type SummaryHandler struct {
	Reader ports.DatasetReader
}

func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	sum, err := h.Reader.Summary(r.Context())
	if err != nil {
		log.Printf("summary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SummaryResponse{
		Stays:         sum.Stays,
		People:        sum.People,
		Agents:        sum.Agents,
		FirstArrival:  sum.FirstArrival,
		LastDeparture: sum.LastDeparture,
	})
}
