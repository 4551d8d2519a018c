package store

import (
	"sync"

	"resumeslide/internal/models"
)

// SlideStore is the persisted slide record collection, most-recent-first.
// Records are append-only: never mutated, never deleted.
type SlideStore interface {
	Append(record models.SlideRecord) error
	ListAll() ([]models.SlideRecord, error)
}

type slideStore struct {
	path string
	mu   sync.Mutex
}

func NewSlideStore(path string) SlideStore {
	return &slideStore{path: path}
}

// Append inserts the record at the front of the collection.
func (s *slideStore) Append(record models.SlideRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []models.SlideRecord{}
	if err := readArray(s.path, &records); err != nil {
		return err
	}

	records = append([]models.SlideRecord{record}, records...)

	return writeArray(s.path, records)
}

func (s *slideStore) ListAll() ([]models.SlideRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []models.SlideRecord{}
	if err := readArray(s.path, &records); err != nil {
		return nil, err
	}

	return records, nil
}
