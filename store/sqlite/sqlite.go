/*
Package sqlite provides a SQLite-backed holiday calendar store.

PURPOSE:

	The calendar package only defines the calendar interface and composition
	rules; actual holiday lists per jurisdiction live outside the core. This
	store is that external source: it persists named calendars (weekend rule
	plus dated holidays) and materializes them into immutable
	calendar.Calendar values.

KEY TABLES:

	calendars: one row per calendar (name, weekend weekdays)
	holidays:  one row per (calendar, date)

MATERIALIZATION:

	LoadCalendar reads the full holiday list once and builds an immutable
	in-memory calendar. The loaded calendar never touches the database again,
	so adjustment hot paths stay pure and lock-free.

WAL MODE:

	SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
	- Multiple readers don't block
	- Single writer at a time
	- Better crash recovery

USAGE:

	store, err := sqlite.New("./data/calendars.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

	cal, err := store.LoadCalendar(ctx, "GBLO")
	calendar.Register(cal)

SEE ALSO:
  - calendar: NewImmutable, the registry loaded calendars feed into
  - api: exposes these operations over HTTP
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/calendar-engine/calendar"
)

// Store persists holiday calendars in SQLite.
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
	-- Calendars (one row per named calendar)
	CREATE TABLE IF NOT EXISTS calendars (
		name TEXT PRIMARY KEY,
		-- comma-separated time.Weekday ordinals, e.g. "6,0" for Sat/Sun
		weekend TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Holidays (one row per calendar/date)
	CREATE TABLE IF NOT EXISTS holidays (
		calendar_name TEXT NOT NULL REFERENCES calendars(name),
		day TEXT NOT NULL,
		PRIMARY KEY (calendar_name, day)
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_calendar
		ON holidays(calendar_name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITES
// =============================================================================

// SaveCalendar creates or replaces a calendar definition. Holidays are
// added separately via AddHolidays.
func (s *Store) SaveCalendar(ctx context.Context, name string, weekendDays []time.Weekday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendars (name, weekend, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET weekend = excluded.weekend`,
		name, encodeWeekend(weekendDays), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save calendar %q: %w", name, err)
	}
	return nil
}

// AddHolidays records holiday dates for a calendar. Re-adding an existing
// date is a no-op, so loaders can be replayed safely.
func (s *Store) AddHolidays(ctx context.Context, name string, days []calendar.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if known, err := s.calendarExists(ctx, name); err != nil {
		return err
	} else if !known {
		return &calendar.UnknownCalendarError{Name: name}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO holidays (calendar_name, day) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		if _, err := stmt.ExecContext(ctx, name, d.String()); err != nil {
			return fmt.Errorf("failed to insert holiday %s: %w", d, err)
		}
	}
	return tx.Commit()
}

// =============================================================================
// READS
// =============================================================================

// LoadCalendar materializes a stored calendar into an immutable
// calendar.Calendar.
func (s *Store) LoadCalendar(ctx context.Context, name string) (calendar.Calendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var weekendStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT weekend FROM calendars WHERE name = ?`, name).Scan(&weekendStr)
	if err == sql.ErrNoRows {
		return calendar.Calendar{}, &calendar.UnknownCalendarError{Name: name}
	}
	if err != nil {
		return calendar.Calendar{}, fmt.Errorf("failed to load calendar %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT day FROM holidays WHERE calendar_name = ? ORDER BY day`, name)
	if err != nil {
		return calendar.Calendar{}, fmt.Errorf("failed to load holidays for %q: %w", name, err)
	}
	defer rows.Close()

	var holidays []calendar.Date
	for rows.Next() {
		var dayStr string
		if err := rows.Scan(&dayStr); err != nil {
			return calendar.Calendar{}, err
		}
		d, err := calendar.ParseDate(dayStr)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("corrupt holiday date %q: %w", dayStr, err)
		}
		holidays = append(holidays, d)
	}
	if err := rows.Err(); err != nil {
		return calendar.Calendar{}, err
	}

	return calendar.NewImmutable(name, holidays, decodeWeekend(weekendStr)), nil
}

// ListCalendars returns the names of all stored calendars.
func (s *Store) ListCalendars(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM calendars ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) calendarExists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM calendars WHERE name = ?`, name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// =============================================================================
// WEEKEND ENCODING
// =============================================================================

func encodeWeekend(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekend(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}
