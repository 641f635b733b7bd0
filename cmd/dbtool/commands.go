package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"itinerary-dataset/internal/adapters/repositories"
	"itinerary-dataset/internal/config"
	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/platform/db"
	"itinerary-dataset/internal/platform/obs"
	"itinerary-dataset/internal/ports"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Inspect and publish generated itinerary datasets",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("sqlite", config.Get("OUTPUT_PATH", "data.sqlite"), "path to the generated SQLite dataset")

	root.AddCommand(newExportCmd(), newSummaryCmd())
	return root
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy a SQLite dataset into Postgres",
		Long: `Replace the fly and who tables in the Postgres database named by
--database-url (default $DATABASE_URL) with the rows of the SQLite dataset.
Storage order and identifiers are preserved.`,
		Example: `  dbtool export
  dbtool export --sqlite out/data.sqlite --database-url postgres://localhost/itineraries`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlitePath, _ := cmd.Flags().GetString("sqlite")
			databaseURL, _ := cmd.Flags().GetString("database-url")
			if strings.TrimSpace(databaseURL) == "" {
				return errors.New("DATABASE_URL is required")
			}

			ctx, _ := obs.WithRunID(cmd.Context())
			src, err := openDataset(sqlitePath)
			if err != nil {
				return err
			}
			defer src.DB.Close()

			pg, err := db.OpenPostgres(databaseURL)
			if err != nil {
				return err
			}
			defer pg.Close()

			n, err := export(ctx, src, repositories.NewPostgresDatasetRepository(pg))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d stays and %d people\n", n.Stays, n.People)
			return nil
		},
	}
	cmd.Flags().String("database-url", config.Get("DATABASE_URL", ""), "Postgres connection string")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print row counts and time span of a SQLite dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlitePath, _ := cmd.Flags().GetString("sqlite")
			src, err := openDataset(sqlitePath)
			if err != nil {
				return err
			}
			defer src.DB.Close()

			sum, err := src.Summary(cmd.Context())
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), sqlitePath, sum)
			return nil
		},
	}
}

// openDataset opens an existing dataset without recreating it.
func openDataset(path string) (*repositories.SqliteDatasetRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	conn, err := db.OpenSqlite(path)
	if err != nil {
		return nil, err
	}
	return repositories.NewSqliteDatasetRepository(conn), nil
}

// export reads the whole dataset from src and replaces dst with it.
func export(ctx context.Context, src ports.DatasetReader, dst ports.DatasetWriter) (ports.DatasetSummary, error) {
	stored, err := src.ListStays(ctx, ports.StayFilter{})
	if err != nil {
		return ports.DatasetSummary{}, fmt.Errorf("export: %w", err)
	}
	people, err := src.ListPeople(ctx)
	if err != nil {
		return ports.DatasetSummary{}, fmt.Errorf("export: %w", err)
	}

	rows := make([]domain.FlightRow, 0, len(stored))
	for _, r := range stored {
		rows = append(rows, r.FlightRow)
	}

	if err := dst.ReplaceDataset(ctx, rows, people); err != nil {
		return ports.DatasetSummary{}, fmt.Errorf("export: %w", err)
	}
	return ports.DatasetSummary{Stays: len(rows), People: len(people)}, nil
}

func printSummary(w io.Writer, path string, sum ports.DatasetSummary) {
	fmt.Fprintf(w, "dataset:        %s\n", path)
	fmt.Fprintf(w, "stays:          %d\n", sum.Stays)
	fmt.Fprintf(w, "agents:         %d\n", sum.Agents)
	fmt.Fprintf(w, "people:         %d\n", sum.People)
	if sum.FirstArrival != "" {
		fmt.Fprintf(w, "first arrival:  %s\n", sum.FirstArrival)
		fmt.Fprintf(w, "last departure: %s\n", sum.LastDeparture)
	}
}
