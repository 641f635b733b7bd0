package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/platform/obs"
)

const createPgFlyQuery = `
	CREATE TABLE fly (
		id BIGSERIAL PRIMARY KEY,
		agent_ssn TEXT NOT NULL,
		city TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		departure_time TEXT NOT NULL
	);
	`

const createPgWhoQuery = `
	CREATE TABLE who (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		ssn TEXT NOT NULL UNIQUE,
		height_cm INTEGER,
		eye_color TEXT,
		weight_kg INTEGER
	);
	`

// Postgres-backed DatasetWriter used by dbtool export. Columns and ordering
// match the SQLite artifact so the two stores are interchangeable.
type PostgresDatasetRepository struct{ DB *sql.DB }

func NewPostgresDatasetRepository(db *sql.DB) *PostgresDatasetRepository {
	return &PostgresDatasetRepository{DB: db}
}

// ReplaceDataset drops and recreates both tables, then inserts rows and people
// inside one transaction.
func (p *PostgresDatasetRepository) ReplaceDataset(ctx context.Context, rows []domain.FlightRow, people []domain.Person) (err error) {
	defer obs.Time(ctx, "postgres.ReplaceDataset")(&err)

	if p.DB == nil {
		return errors.New("postgres dataset repository: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		"DROP TABLE IF EXISTS fly;",
		"DROP TABLE IF EXISTS who;",
		createPgFlyQuery,
		createPgWhoQuery,
	}
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("replace dataset: exec statement #%d: %w", i+1, err)
		}
	}

	if err := insertRows(ctx, tx, rows, `
	INSERT INTO fly (
		agent_ssn,
		city,
		arrival_time,
		departure_time
	)
	VALUES ($1, $2, $3, $4);
	`); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}

	if err := insertPeople(ctx, tx, people, `
	INSERT INTO who (
		name,
		ssn,
		height_cm,
		eye_color,
		weight_kg
	)
	VALUES ($1, $2, $3, $4, $5);
	`); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace dataset: commit tx: %w", err)
	}
	return nil
}
