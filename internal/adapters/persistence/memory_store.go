package persistence

import (
	"context"
	"sync"

	"timesheet/internal/domain"
	"timesheet/internal/ports"
)

// MemoryStore keeps all entries in insertion order for the lifetime of the
// process. Writers are serialized by mu.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

var _ ports.TimesheetStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: []domain.Entry{}}
}

func (s *MemoryStore) Append(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, copyEntry(entry))
	return nil
}

func (s *MemoryStore) AppendBatch(_ context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		batch = append(batch, copyEntry(entry))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, batch...)
	return nil
}

func (s *MemoryStore) EntriesForUser(_ context.Context, user string) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Entry, 0)
	for _, entry := range s.entries {
		if entry.User == user {
			result = append(result, copyEntry(entry))
		}
	}
	return result, nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

func copyEntry(entry domain.Entry) domain.Entry {
	if entry.Cells == nil {
		return entry
	}
	cells := make(map[string]string, len(entry.Cells))
	for column, value := range entry.Cells {
		cells[column] = value
	}
	entry.Cells = cells
	return entry
}
