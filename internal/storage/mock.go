package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MockStorage is an in-memory Storage for handler tests.
type MockStorage struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record

	PingErr error
	SaveErr error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{records: make(map[uuid.UUID]*Record)}
}

func (m *MockStorage) Ping(ctx context.Context) error              { return m.PingErr }
func (m *MockStorage) Close() error                                { return nil }
func (m *MockStorage) WaitForConnection(ctx context.Context) error { return m.PingErr }

func (m *MockStorage) SaveRecord(ctx context.Context, rec *Record) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if rec == nil {
		return errors.New("nil record")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *MockStorage) GetRecord(ctx context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("scenario record not found: %s", id)
	}
	return rec, nil
}

func (m *MockStorage) ListRecords(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MockStorage) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("scenario record not found: %s", id)
	}
	delete(m.records, id)
	return nil
}
