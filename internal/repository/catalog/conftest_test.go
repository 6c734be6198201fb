package catalog

import (
	"context"

	"github.com/kailas-cloud/glassdex/internal/db"
)

// mockStore implements the consumer interfaces for tests.
type mockStore struct {
	kv       map[string][]byte
	hashes   map[string]map[string]string
	getErr   error
	hgetErr  error
	setCalls int
}

func newMockStore() *mockStore {
	return &mockStore{kv: map[string][]byte{}, hashes: map[string]map[string]string{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.kv[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	m.setCalls++
	m.kv[key] = value
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if m.hgetErr != nil {
		return nil, m.hgetErr
	}
	return m.hashes[key], nil
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hashes[key] == nil {
		m.hashes[key] = map[string]string{}
	}
	for k, v := range fields {
		m.hashes[key][k] = v
	}
	return nil
}

func (m *mockStore) HDel(_ context.Context, key string, fields ...string) error {
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}
