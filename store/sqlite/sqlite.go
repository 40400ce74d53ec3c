/*
Package sqlite provides the SQLite-backed property record store.

PURPOSE:
  Persists the raw CMS property records exactly as exported: text columns
  for the untyped fields, a JSON column for the month-label rate rows.
  Implements catalog.Source so the TTL cache can read through it.

KEY TABLE:
  properties: One row per villa/yacht, raw fields unparsed. Normalization
  happens in the catalog package on read, never on write, so a parser fix
  applies retroactively to stored data.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With PostgreSQL, database-level
  concurrency control would handle this instead.

WAL MODE:
  Opened with WAL so concurrent readers don't block the writer.

USAGE:
  store, err := sqlite.New("./data/fleet.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - catalog/cache.go: Source interface and read-through cache
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meridian/rate-engine/catalog"
)

// Store implements catalog.Source using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Raw CMS property records
	CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		guests INTEGER NOT NULL DEFAULT 0,
		cabins INTEGER NOT NULL DEFAULT 0,
		base_weekly_price TEXT NOT NULL DEFAULT '',
		range_rates TEXT NOT NULL DEFAULT '',
		month_rates_json TEXT NOT NULL DEFAULT '[]',
		images TEXT NOT NULL DEFAULT '',
		amenities TEXT NOT NULL DEFAULT '',
		occupied_dates TEXT NOT NULL DEFAULT '',
		arrival_policy TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_properties_kind ON properties(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PROPERTY RECORDS
// =============================================================================

// SaveProperty inserts or replaces a record. The CMS export is the source
// of truth, so a re-import overwrites in place.
func (s *Store) SaveProperty(ctx context.Context, r catalog.Record) error {
	if r.ID == "" || r.Name == "" {
		return catalog.ErrEmptyRecord
	}

	monthRates, err := json.Marshal(r.MonthRates)
	if err != nil {
		return fmt.Errorf("failed to encode month rates: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO properties (
			id, name, kind, location, guests, cabins,
			base_weekly_price, range_rates, month_rates_json,
			images, amenities, occupied_dates, arrival_policy,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			location = excluded.location,
			guests = excluded.guests,
			cabins = excluded.cabins,
			base_weekly_price = excluded.base_weekly_price,
			range_rates = excluded.range_rates,
			month_rates_json = excluded.month_rates_json,
			images = excluded.images,
			amenities = excluded.amenities,
			occupied_dates = excluded.occupied_dates,
			arrival_policy = excluded.arrival_policy,
			updated_at = excluded.updated_at`,
		r.ID, r.Name, string(r.Kind), r.Location, r.Guests, r.Cabins,
		r.BaseWeeklyPrice, r.RangeRates, string(monthRates),
		r.Images, r.Amenities, r.OccupiedDates, r.ArrivalPolicy,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	return nil
}

// GetProperty returns one record by ID.
func (s *Store) GetProperty(ctx context.Context, id string) (catalog.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, location, guests, cabins,
		       base_weekly_price, range_rates, month_rates_json,
		       images, amenities, occupied_dates, arrival_policy
		FROM properties WHERE id = ?`, id)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Record{}, catalog.ErrPropertyNotFound
	}
	if err != nil {
		return catalog.Record{}, fmt.Errorf("failed to load property: %w", err)
	}
	return r, nil
}

// LoadRecords returns all records in insertion order. This is the
// catalog.Source implementation the cache reads through.
func (s *Store) LoadRecords(ctx context.Context) ([]catalog.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, kind, location, guests, cabins,
		       base_weekly_price, range_rates, month_rates_json,
		       images, amenities, occupied_dates, arrival_policy
		FROM properties ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteProperty removes a record.
func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrPropertyNotFound
	}
	return nil
}

// Compile-time check that Store implements catalog.Source.
var _ catalog.Source = (*Store)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (catalog.Record, error) {
	var r catalog.Record
	var kind, monthRates string
	err := s.Scan(
		&r.ID, &r.Name, &kind, &r.Location, &r.Guests, &r.Cabins,
		&r.BaseWeeklyPrice, &r.RangeRates, &monthRates,
		&r.Images, &r.Amenities, &r.OccupiedDates, &r.ArrivalPolicy,
	)
	if err != nil {
		return catalog.Record{}, err
	}
	r.Kind = catalog.Kind(kind)
	// A corrupt JSON column degrades to "no month rates", same policy as
	// every other malformed field.
	_ = json.Unmarshal([]byte(monthRates), &r.MonthRates)
	return r, nil
}
