package store

import (
	"sync"

	"resumeslide/internal/models"
)

// LogStore is the persisted activity log, oldest-first on disk. Callers
// wanting recent-first must reverse at read time. Entries are never deleted
// and the collection has no size cap.
type LogStore interface {
	Append(entry models.LogEntry) error
	ListAll() ([]models.LogEntry, error)
}

type logStore struct {
	path string
	mu   sync.Mutex
}

func NewLogStore(path string) LogStore {
	return &logStore{path: path}
}

func (s *logStore) Append(entry models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.LogEntry{}
	if err := readArray(s.path, &entries); err != nil {
		return err
	}

	entries = append(entries, entry)

	return writeArray(s.path, entries)
}

func (s *logStore) ListAll() ([]models.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.LogEntry{}
	if err := readArray(s.path, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
