package handlers

import (
	"net/http"

	"itinerary-dataset/internal/api/dto"
	"itinerary-dataset/internal/geography"
)

// Cities lists the static geography table in its canonical order.
func Cities(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	all := geography.All()
	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(all))}
	for _, c := range all {
		res.Cities = append(res.Cities, dto.CityResponse{
			Name:    c.Name,
			Country: c.Country,
			Label:   c.Label(),
			Lat:     c.Lat,
			Lon:     c.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
