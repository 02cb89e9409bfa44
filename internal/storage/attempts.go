package storage

import (
	"fmt"
	"time"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
)

// Attempt is one finished or skipped level, kept as history.
type Attempt struct {
	ID             string // ULID, sortable by creation time
	Profile        string
	Level          int
	Moves          int
	ElapsedSeconds int
	Stars          int
	Skipped        bool
	CreatedAt      time.Time
}

// AppendAttempt stores an attempt and returns its ID.
// A zero CreatedAt is set to now.
func (s *Store) AppendAttempt(a Attempt) (string, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.ID = s.newID(a.CreatedAt)

	_, err := s.db.Exec(
		`INSERT INTO attempts (id, profile, level, moves, elapsed_secs, stars, skipped, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Profile, a.Level, a.Moves, a.ElapsedSeconds, a.Stars, a.Skipped, formatTime(a.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save attempt: %w", err)
	}
	return a.ID, nil
}

// RecentAttempts returns a profile's newest attempts first.
func (s *Store) RecentAttempts(profile string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level, moves, elapsed_secs, stars, skipped, created_at
		 FROM attempts
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Profile, &a.Level, &a.Moves, &a.ElapsedSeconds, &a.Stars, &a.Skipped, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearAttempts deletes a profile's attempt history.
func (s *Store) ClearAttempts(profile string) error {
	if _, err := s.db.Exec("DELETE FROM attempts WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// ProfileStore binds a Store to one profile. It satisfies the session's
// persister interface.
type ProfileStore struct {
	store   *Store
	profile string
}

// ForProfile returns a view of the store scoped to profile.
func (s *Store) ForProfile(profile string) *ProfileStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &ProfileStore{store: s, profile: profile}
}

// Profile returns the bound profile name.
func (p *ProfileStore) Profile() string {
	return p.profile
}

// Load reads the bound profile's progress.
func (p *ProfileStore) Load() (*progress.Record, error) {
	return p.store.LoadRecord(p.profile)
}

// Save writes the bound profile's progress.
func (p *ProfileStore) Save(rec *progress.Record) error {
	return p.store.SaveRecord(p.profile, rec)
}

// AppendAttempt stores an attempt for the bound profile.
func (p *ProfileStore) AppendAttempt(a Attempt) (string, error) {
	a.Profile = p.profile
	return p.store.AppendAttempt(a)
}

// RecentAttempts returns the bound profile's newest attempts.
func (p *ProfileStore) RecentAttempts(limit int) ([]Attempt, error) {
	return p.store.RecentAttempts(p.profile, limit)
}
