// Package storage provides SQLite-based persistence for player progress and
// attempt history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy io.Reader
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			highest_level INTEGER NOT NULL DEFAULT 0,
			total_stars INTEGER NOT NULL DEFAULT 0,
			attempts_completed INTEGER NOT NULL DEFAULT 0,
			current_level INTEGER NOT NULL DEFAULT 1,
			resume_level INTEGER NOT NULL DEFAULT 1,
			skips_available INTEGER NOT NULL DEFAULT 3,
			skips_used INTEGER NOT NULL DEFAULT 0,
			unlimited_skips INTEGER NOT NULL DEFAULT 0,
			sound INTEGER NOT NULL DEFAULT 1,
			vibration INTEGER NOT NULL DEFAULT 1,
			theme TEXT NOT NULL DEFAULT 'default',
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS level_results (
			profile TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			skipped INTEGER NOT NULL DEFAULT 0,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (profile, level)
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			skipped INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_profile ON attempts(profile, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) newID(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LoadRecord reads a profile's progress. It returns nil and no error when
// the profile does not exist yet.
func (s *Store) LoadRecord(profile string) (*progress.Record, error) {
	rec := &progress.Record{Results: make(map[int]progress.LevelResult)}
	p := &rec.Profile

	err := s.db.QueryRow(
		`SELECT display_name, highest_level, total_stars, attempts_completed,
		        current_level, resume_level, skips_available, skips_used, unlimited_skips,
		        sound, vibration, theme
		 FROM profiles
		 WHERE name = ?`,
		profile,
	).Scan(
		&p.DisplayName,
		&p.HighestLevelReached,
		&p.TotalStarsEarned,
		&p.AttemptsCompleted,
		&rec.CurrentLevel,
		&rec.ResumeLevel,
		&rec.Skips.Available,
		&rec.Skips.Used,
		&rec.Skips.Unlimited,
		&rec.Settings.Sound,
		&rec.Settings.Vibration,
		&rec.Settings.Theme,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile %s: %w", profile, err)
	}

	rows, err := s.db.Query(
		`SELECT level, moves, elapsed_secs, stars, skipped, recorded_at
		 FROM level_results
		 WHERE profile = ?`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level int
		var r progress.LevelResult
		var recordedAt string
		if err := rows.Scan(&level, &r.Moves, &r.ElapsedSeconds, &r.Stars, &r.Skipped, &recordedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.RecordedAt = parseTime(recordedAt)
		rec.Results[level] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// SaveRecord replaces a profile's stored progress in one transaction.
func (s *Store) SaveRecord(profile string, rec *progress.Record) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck // Rollback after a failed step
		}
	}()

	p := rec.Profile
	_, err = tx.Exec(
		`INSERT INTO profiles
		 (name, display_name, highest_level, total_stars, attempts_completed,
		  current_level, resume_level, skips_available, skips_used, unlimited_skips,
		  sound, vibration, theme, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		  display_name = excluded.display_name,
		  highest_level = excluded.highest_level,
		  total_stars = excluded.total_stars,
		  attempts_completed = excluded.attempts_completed,
		  current_level = excluded.current_level,
		  resume_level = excluded.resume_level,
		  skips_available = excluded.skips_available,
		  skips_used = excluded.skips_used,
		  unlimited_skips = excluded.unlimited_skips,
		  sound = excluded.sound,
		  vibration = excluded.vibration,
		  theme = excluded.theme,
		  updated_at = excluded.updated_at`,
		profile, p.DisplayName, p.HighestLevelReached, p.TotalStarsEarned, p.AttemptsCompleted,
		rec.CurrentLevel, rec.ResumeLevel, rec.Skips.Available, rec.Skips.Used, rec.Skips.Unlimited,
		rec.Settings.Sound, rec.Settings.Vibration, rec.Settings.Theme, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", profile, err)
	}

	if _, err = tx.Exec("DELETE FROM level_results WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear level results: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO level_results (profile, level, moves, elapsed_secs, stars, skipped, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare level results: %w", err)
	}
	defer stmt.Close()

	for level, r := range rec.Results {
		if _, err = stmt.Exec(profile, level, r.Moves, r.ElapsedSeconds, r.Stars, r.Skipped, formatTime(r.RecordedAt)); err != nil {
			return fmt.Errorf("storage: cannot save level %d: %w", level, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile with its results and attempts.
func (s *Store) DeleteProfile(profile string) error {
	if _, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot delete profile: %w", err)
	}
	return s.ClearAttempts(profile)
}

// ProfileSummary is one row of the profile listing.
type ProfileSummary struct {
	Name         string
	DisplayName  string
	HighestLevel int
	TotalStars   int
	UpdatedAt    time.Time
}

// Profiles lists stored profiles, most recently played first.
func (s *Store) Profiles() ([]ProfileSummary, error) {
	rows, err := s.db.Query(
		`SELECT name, display_name, highest_level, total_stars, updated_at
		 FROM profiles
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileSummary
	for rows.Next() {
		var p ProfileSummary
		var updatedAt string
		if err := rows.Scan(&p.Name, &p.DisplayName, &p.HighestLevel, &p.TotalStars, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
