package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"itinerary-dataset/internal/adapters/repositories"
	"itinerary-dataset/internal/api"
	"itinerary-dataset/internal/config"
	"itinerary-dataset/internal/platform/db"
)

// main wires the SQLite dataset behind the read-only query API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("OUTPUT_PATH", "data.sqlite")
	port := config.Get("PORT", "8080")

	if _, err := os.Stat(dbPath); err != nil {
		log.Fatalf("dataset %s not found, run the generator first: %v", dbPath, err)
	}

	conn, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewSqliteDatasetRepository(conn)
	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s dataset=%s", port, dbPath)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
