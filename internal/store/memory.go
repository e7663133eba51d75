package store

import (
	"context"
	"fmt"
	"sync"

	"go-entrylevel-collector/internal/models"
)

// MemoryStore is a map-backed Store for tests and dry runs.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.JobRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.JobRecord)}
}

func (m *MemoryStore) FindByURL(ctx context.Context, url string) (*models.JobRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[url]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (m *MemoryStore) Create(ctx context.Context, record *models.JobRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.URL]; exists {
		return fmt.Errorf("record already exists for url %s", record.URL)
	}
	m.records[record.URL] = *record
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Len reports how many records have been persisted.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
