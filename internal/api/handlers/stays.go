package handlers

import (
	"log"
	"math"
	"net/http"
	"strings"

	"itinerary-dataset/internal/api/dto"
	"itinerary-dataset/internal/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// StayHandler pages through fly rows in storage order.
type StayHandler struct {
	Reader ports.DatasetReader
}

func (h *StayHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	page, err := queryInt(r, "page", 1, 1, math.MaxInt32)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	size, err := queryInt(r, "page_size", defaultPageSize, 1, maxPageSize)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	filter := ports.StayFilter{
		AgentSSN: strings.TrimSpace(q.Get("agent")),
		City:     strings.TrimSpace(q.Get("city")),
	}

	total, err := h.Reader.CountStays(r.Context(), filter)
	if err != nil {
		log.Printf("count stays failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	filter.Limit = size
	filter.Offset = (page - 1) * size
	rows, err := h.Reader.ListStays(r.Context(), filter)
	if err != nil {
		log.Printf("list stays failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStaysResponse{
		Stays:    make([]dto.StayResponse, 0, len(rows)),
		Page:     page,
		PageSize: size,
		Total:    total,
		HasNext:  filter.Offset+len(rows) < total,
	}
	for _, row := range rows {
		res.Stays = append(res.Stays, dto.StayResponse{
			ID:            row.ID,
			AgentSSN:      row.AgentSSN,
			City:          row.City,
			ArrivalTime:   row.ArrivalTime,
			DepartureTime: row.DepartureTime,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
