package handlers

import (
	"log"
	"net/http"
	"strings"

	"itinerary-dataset/internal/api/dto"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/ports"
)

// PeopleHandler serves who records, all of them or one by ssn.
type PeopleHandler struct {
	Reader ports.DatasetReader
}

func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if ssn := strings.TrimSpace(r.URL.Query().Get("ssn")); ssn != "" {
		h.get(w, r, ssn)
		return
	}

	people, err := h.Reader.ListPeople(r.Context())
	if err != nil {
		log.Printf("list people failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPeopleResponse{People: make([]dto.PersonResponse, 0, len(people))}
	for _, p := range people {
		res.People = append(res.People, toPersonResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PeopleHandler) get(w http.ResponseWriter, r *http.Request, ssn string) {
	p, err := h.Reader.GetPerson(r.Context(), ssn)
	if err != nil {
		log.Printf("get person failed: ssn=%s err=%v", ssn, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if p == nil {
		writeError(w, r, http.StatusNotFound, "person not found")
		return
	}
	writeJSON(w, r, http.StatusOK, toPersonResponse(*p))
}

func toPersonResponse(p domain.Person) dto.PersonResponse {
	return dto.PersonResponse{
		Name:     p.Name,
		SSN:      p.SSN,
		HeightCm: p.HeightCm,
		EyeColor: p.EyeColor,
		WeightKg: p.WeightKg,
	}
}
