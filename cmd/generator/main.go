package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"itinerary-dataset/internal/adapters/distance"
	"itinerary-dataset/internal/adapters/repositories"
	"itinerary-dataset/internal/config"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/geography"
	"itinerary-dataset/internal/platform/obs"
	"itinerary-dataset/internal/randx"
	"itinerary-dataset/internal/services"
)

// main is the composition root of the dataset generator. Every dataset is
// computed in memory before the SQLite file is touched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, runID := obs.WithRunID(context.Background())
	log.Printf("run_id=%s op=generator.start", runID)

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "generator: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	defer obs.Time(ctx, "generator.run")(&err)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	window, err := cfg.Window()
	if err != nil {
		return err
	}

	roster, err := repositories.LoadRosterJSON(cfg.RosterPath)
	if err != nil {
		return err
	}
	log.Printf("op=generator.roster path=%s agents=%d", cfg.RosterPath, len(roster))

	req := services.BuildDatasetRequest{
		Roster: roster,
		Window: window,
		Cities: geography.All(),
		Estimator: services.TravelTimeEstimator{
			Provider:      distance.NewHaversineProvider(),
			AvgSpeedKmh:   cfg.AvgSpeedKmh,
			OverheadHours: cfg.OverheadHours,
		},
		MaxTrips:         cfg.MaxTrips,
		StartWindowDays:  cfg.StartWindowDays,
		JitterSD:         cfg.JitterSD,
		DesignatedID:     cfg.DesignatedID,
		DesignatedName:   cfg.DesignatedName,
		TargetLocation:   cfg.TargetLocation,
		TargetInstant:    cfg.TargetInstant,
		MinPresent:       cfg.MinPresent,
		MaxPresent:       cfg.MaxPresent,
		ResolverAttempts: cfg.ResolverAttempts,
	}

	ds, err := services.BuildDataset(ctx, req, randx.New(cfg.Seed))
	if errors.Is(err, services.ErrEmptyRoster) {
		return fmt.Errorf("%w: %s has no usable identifiers", err, cfg.RosterPath)
	}
	if err != nil {
		return err
	}

	db, err := repositories.CreateSqliteFile(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store := repositories.NewSqliteDatasetRepository(db)
	if err := store.ReplaceDataset(ctx, ds.Rows, ds.People); err != nil {
		return err
	}

	log.Printf("op=generator.done output=%s rows=%d people=%d target=%q at=%s present=%d designated=%s",
		cfg.OutputPath, len(ds.Rows), len(ds.People), ds.Event.Location,
		domain.FormatISO(ds.Event.At), ds.Presence.Final, ds.Resolution.Mode)
	return nil
}
