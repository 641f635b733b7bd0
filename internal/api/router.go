package api

import (
	"net/http"

	"itinerary-dataset/internal/api/handlers"
	"itinerary-dataset/internal/ports"
)

// NewRouter wires the read-only dataset endpoints to reader.
func NewRouter(reader ports.DatasetReader) http.Handler {
	mux := http.NewServeMux()

	stays := &handlers.StayHandler{Reader: reader}
	people := &handlers.PeopleHandler{Reader: reader}
	presence := &handlers.PresenceHandler{Reader: reader}
	summary := &handlers.SummaryHandler{Reader: reader}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cities", handlers.Cities)
	mux.HandleFunc("/stays", stays.List)
	mux.HandleFunc("/people", people.List)
	mux.HandleFunc("/presence", presence.Get)
	mux.HandleFunc("/summary", summary.Get)

	return loggingMiddleware(mux)
}
