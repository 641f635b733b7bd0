package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"itinerary-dataset/internal/platform/db"
)

const createFlyQuery = `
	CREATE TABLE IF NOT EXISTS fly (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		agent_ssn TEXT NOT NULL,
		city TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		departure_time TEXT NOT NULL
	);
	`

const createWhoQuery = `
	CREATE TABLE IF NOT EXISTS who (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		ssn TEXT NOT NULL UNIQUE,
		height_cm INTEGER,
		eye_color TEXT,
		weight_kg INTEGER
	);
	`

// Initialize the SQLite dataset schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		createFlyQuery,
		createWhoQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// CreateSqliteFile deletes any database at path and opens a fresh one with
// the schema in place. The dataset is never merged into an old file.
func CreateSqliteFile(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err == nil {
		log.Printf("Overwriting existing %s", path)
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("create sqlite file: remove %q: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("create sqlite file: stat %q: %w", path, err)
	}

	conn, err := db.OpenSqlite(path)
	if err != nil {
		return nil, fmt.Errorf("create sqlite file: %w", err)
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create sqlite file: %w", err)
	}

	return conn, nil
}
