// Package store persists net worth entries, scenarios, and the user profile
// in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"

	_ "modernc.org/sqlite"
)

// ErrLastScenario is returned when deleting the only remaining scenario.
// Projections need at least one scenario to run against.
var ErrLastScenario = errors.New("cannot delete the last scenario")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const birthDateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if necessary) the database at dbPath
// and runs pending migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddEntry records a net worth snapshot and returns it with its assigned ID.
func (r *SQLiteRepository) AddEntry(ctx context.Context, amount decimal.Decimal, recordedAt time.Time) (domain.NetWorthEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO net_worth_entries (amount, recorded_at) VALUES (?, ?)`,
		amount.String(), recordedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return domain.NetWorthEntry{}, fmt.Errorf("insert net worth entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.NetWorthEntry{}, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "net worth entry saved",
		"id", id,
		"amount", amount.String(),
		"recorded_at", recordedAt.Format(time.RFC3339))

	return domain.NetWorthEntry{ID: id, Amount: amount, Timestamp: recordedAt.UTC()}, nil
}

// ListEntries returns all net worth entries ordered oldest first.
func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]domain.NetWorthEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount, recorded_at FROM net_worth_entries ORDER BY recorded_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list net worth entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.NetWorthEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// LatestEntry returns the most recent net worth entry, or ErrNotFound when
// the table is empty.
func (r *SQLiteRepository) LatestEntry(ctx context.Context) (domain.NetWorthEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, amount, recorded_at FROM net_worth_entries ORDER BY recorded_at DESC, id DESC LIMIT 1`)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NetWorthEntry{}, ErrNotFound
	}
	return entry, err
}

// RemoveEntry deletes a net worth entry by ID.
func (r *SQLiteRepository) RemoveEntry(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM net_worth_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete net worth entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}

	slog.InfoContext(ctx, "net worth entry removed", "id", id)
	return nil
}

// Scenarios returns all stored scenarios ordered by display order.
func (r *SQLiteRepository) Scenarios(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM scenarios ORDER BY display_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []domain.Scenario
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		var s domain.Scenario
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decode scenario payload: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

// SaveScenario inserts or replaces a scenario. Derived fields written back by
// the engine (yearly contribution, effective tax rate) travel inside the
// payload, so a plain upsert covers both create and update.
func (r *SQLiteRepository) SaveScenario(ctx context.Context, s *domain.Scenario) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("scenario requires an id")
	}
	if s.Name == "" {
		return fmt.Errorf("scenario requires a name")
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario payload: %w", err)
	}

	selected := 0
	if s.Selected {
		selected = 1
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO scenarios (id, name, display_order, selected, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		    name = excluded.name,
		    display_order = excluded.display_order,
		    selected = excluded.selected,
		    payload = excluded.payload,
		    updated_at = CURRENT_TIMESTAMP`,
		s.ID, s.Name, s.DisplayOrder, selected, string(payload))
	if err != nil {
		return fmt.Errorf("save scenario %s: %w", s.Name, err)
	}

	slog.InfoContext(ctx, "scenario saved", "id", s.ID, "name", s.Name)
	return nil
}

// DeleteScenario removes a scenario by ID, refusing to delete the last one.
func (r *SQLiteRepository) DeleteScenario(ctx context.Context, id string) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&count); err != nil {
		return fmt.Errorf("count scenarios: %w", err)
	}
	if count <= 1 {
		return ErrLastScenario
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}

	slog.InfoContext(ctx, "scenario deleted", "id", id)
	return nil
}

// Profile returns the stored user profile. A missing row is not an error; it
// yields a zero profile with no birth date.
func (r *SQLiteRepository) Profile(ctx context.Context) (domain.Profile, error) {
	var birthDate string
	err := r.db.QueryRowContext(ctx, `SELECT birth_date FROM profile WHERE id = 1`).Scan(&birthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	parsed, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("parse birth date %q: %w", birthDate, err)
	}
	return domain.Profile{BirthDate: parsed}, nil
}

// SaveProfile upserts the single profile row.
func (r *SQLiteRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profile (id, birth_date) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET birth_date = excluded.birth_date`,
		profile.BirthDate.Format(birthDateLayout))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	slog.InfoContext(ctx, "profile saved", "birth_date", profile.BirthDate.Format(birthDateLayout))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.NetWorthEntry, error) {
	var (
		entry      domain.NetWorthEntry
		amount     string
		recordedAt string
	)
	if err := row.Scan(&entry.ID, &amount, &recordedAt); err != nil {
		return domain.NetWorthEntry{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.NetWorthEntry{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	entry.Amount = parsed

	ts, err := time.Parse(time.RFC3339, recordedAt)
	if err != nil {
		return domain.NetWorthEntry{}, fmt.Errorf("parse timestamp %q: %w", recordedAt, err)
	}
	entry.Timestamp = ts

	return entry, nil
}
