package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"itinerary-dataset/internal/api/dto"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/geography"
	"itinerary-dataset/internal/ports"
)

// PresenceHandler answers "who was in city at instant at".
type PresenceHandler struct {
	Reader ports.DatasetReader
}

func (h *PresenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	city := strings.TrimSpace(q.Get("city"))
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}
	if _, err := geography.LookupLabel(city); errors.Is(err, geography.ErrUnknownLocation) {
		writeError(w, r, http.StatusBadRequest, "city must be a \"City, Country\" label from /cities")
		return
	}

	at, err := time.Parse(time.RFC3339, strings.TrimSpace(q.Get("at")))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "at must be an RFC 3339 timestamp")
		return
	}
	at = at.UTC().Truncate(time.Second)

	agents, err := h.Reader.PresentAt(r.Context(), city, at)
	if err != nil {
		log.Printf("present at failed: city=%q err=%v", city, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PresenceResponse{
		City:   city,
		At:     domain.FormatISO(at),
		Agents: agents,
		Count:  len(agents),
	})
}
