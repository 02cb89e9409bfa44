package watersort

import (
	"sync"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
)

// Persister loads and saves a player's progress.
// Load returns a nil record and no error when nothing is stored yet.
type Persister interface {
	Load() (*progress.Record, error)
	Save(*progress.Record) error
}

// MemoryPersister keeps progress in memory. It backs storage-less play and
// tests. SaveErr, when set, is returned from every Save.
type MemoryPersister struct {
	mu      sync.Mutex
	record  *progress.Record
	saves   int
	SaveErr error
}

// NewMemoryPersister returns a persister seeded with rec, which may be nil.
func NewMemoryPersister(rec *progress.Record) *MemoryPersister {
	m := &MemoryPersister{}
	if rec != nil {
		m.record = rec.Clone()
	}
	return m
}

// Load returns a copy of the stored record.
func (m *MemoryPersister) Load() (*progress.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil, nil
	}
	return m.record.Clone(), nil
}

// Save stores a copy of rec.
func (m *MemoryPersister) Save(rec *progress.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.record = rec.Clone()
	m.saves++
	return nil
}

// Saves returns the number of successful saves.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
