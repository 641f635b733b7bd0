package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"itinerary-dataset/internal/domain"
	"itinerary-dataset/internal/platform/obs"
	"itinerary-dataset/internal/ports"
)

// SQLite-backed implementation of the DatasetWriter and DatasetReader ports.
type SqliteDatasetRepository struct{ DB *sql.DB }

func NewSqliteDatasetRepository(db *sql.DB) *SqliteDatasetRepository {
	return &SqliteDatasetRepository{DB: db}
}

// ReplaceDataset clears both tables and inserts every row in a single
// transaction, so the store is either the old dataset or the new one.
func (s *SqliteDatasetRepository) ReplaceDataset(ctx context.Context, rows []domain.FlightRow, people []domain.Person) (err error) {
	defer obs.Time(ctx, "sqlite.ReplaceDataset")(&err)

	if s.DB == nil {
		return errors.New("sqlite dataset repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM fly;", "DELETE FROM who;"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("replace dataset: clear tables: %w", err)
		}
	}

	if err := insertRows(ctx, tx, rows, `
	INSERT INTO fly (
		agent_ssn,
		city,
		arrival_time,
		departure_time
	)
	VALUES (?, ?, ?, ?);
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
	VALUES (?, ?, ?, ?, ?);
	`); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace dataset: commit tx: %w", err)
	}

	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, rows []domain.FlightRow, query string) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("insert fly rows: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.AgentSSN, r.City, r.ArrivalTime, r.DepartureTime); err != nil {
			return fmt.Errorf("insert fly rows: row %d agent_ssn=%s: %w", i+1, r.AgentSSN, err)
		}
	}
	return nil
}

func insertPeople(ctx context.Context, tx *sql.Tx, people []domain.Person, query string) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("insert who rows: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range people {
		if _, err := stmt.ExecContext(ctx, p.Name, p.SSN, p.HeightCm, p.EyeColor, p.WeightKg); err != nil {
			return fmt.Errorf("insert who rows: ssn=%s: %w", p.SSN, err)
		}
	}
	return nil
}

func stayConditions(f ports.StayFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.AgentSSN != "" {
		conditions = append(conditions, "agent_ssn = ?")
		args = append(args, f.AgentSSN)
	}
	if f.City != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, f.City)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListStays returns fly rows in storage (id) order.
func (s *SqliteDatasetRepository) ListStays(ctx context.Context, f ports.StayFilter) ([]ports.StoredRow, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	where, args := stayConditions(f)
	query := `SELECT id, agent_ssn, city, arrival_time, departure_time FROM fly` + where + ` ORDER BY id`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, max(f.Offset, 0))
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stays: query fly table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.StoredRow, 0, 64)
	for rows.Next() {
		var r ports.StoredRow
		if err := rows.Scan(&r.ID, &r.AgentSSN, &r.City, &r.ArrivalTime, &r.DepartureTime); err != nil {
			return nil, fmt.Errorf("list stays: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stays: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteDatasetRepository) CountStays(ctx context.Context, f ports.StayFilter) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite dataset repository: DB is nil")
	}

	where, args := stayConditions(f)
	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM fly`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stays: %w", err)
	}
	return n, nil
}

// GetPerson returns nil, nil when no record exists for ssn.
func (s *SqliteDatasetRepository) GetPerson(ctx context.Context, ssn string) (*domain.Person, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	query := `SELECT name, ssn, height_cm, eye_color, weight_kg FROM who WHERE ssn = ?`

	var p domain.Person
	err := s.DB.QueryRowContext(ctx, query, ssn).Scan(&p.Name, &p.SSN, &p.HeightCm, &p.EyeColor, &p.WeightKg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person %s: %w", ssn, err)
	}
	return &p, nil
}

func (s *SqliteDatasetRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, ssn, height_cm, eye_color, weight_kg FROM who ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list people: query who table: %w", err)
	}
	defer rows.Close()

	var out []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.Name, &p.SSN, &p.HeightCm, &p.EyeColor, &p.WeightKg); err != nil {
			return nil, fmt.Errorf("list people: scan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list people: row iteration: %w", err)
	}
	return out, nil
}

// PresentAt compares ISO strings directly: the fixed-width UTC layout sorts
// lexicographically in time order.
func (s *SqliteDatasetRepository) PresentAt(ctx context.Context, city string, at time.Time) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	ts := domain.FormatISO(at)
	query := `
	SELECT DISTINCT agent_ssn
	FROM fly
	WHERE city = ?
		AND arrival_time <= ?
		AND departure_time > ?
	ORDER BY agent_ssn;
	`
	rows, err := s.DB.QueryContext(ctx, query, city, ts, ts)
	if err != nil {
		return nil, fmt.Errorf("present at: query fly table: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var ssn string
		if err := rows.Scan(&ssn); err != nil {
			return nil, fmt.Errorf("present at: scan row: %w", err)
		}
		out = append(out, ssn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("present at: row iteration: %w", err)
	}
	return out, nil
}

func (s *SqliteDatasetRepository) Summary(ctx context.Context) (ports.DatasetSummary, error) {
	if s.DB == nil {
		return ports.DatasetSummary{}, errors.New("sqlite dataset repository: DB is nil")
	}

	var sum ports.DatasetSummary
	var first, last sql.NullString
	err := s.DB.QueryRowContext(ctx, `
	SELECT
		COUNT(*),
		COUNT(DISTINCT agent_ssn),
		MIN(arrival_time),
		MAX(departure_time)
	FROM fly;
	`).Scan(&sum.Stays, &sum.Agents, &first, &last)
	if err != nil {
		return ports.DatasetSummary{}, fmt.Errorf("summary: query fly table: %w", err)
	}
	sum.FirstArrival = first.String
	sum.LastDeparture = last.String

	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM who`).Scan(&sum.People); err != nil {
		return ports.DatasetSummary{}, fmt.Errorf("summary: query who table: %w", err)
	}

	return sum, nil
}
