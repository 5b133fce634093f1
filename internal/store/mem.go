package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemStore is an in-memory ObjectStore used by tests and dry runs.
type MemStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	types map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		data:  make(map[string][]byte),
		types: make(map[string]string),
	}
}

func (m *MemStore) key(bucket, path string) string { return bucket + "/" + path }

func (m *MemStore) Put(_ context.Context, bucket, path string, content []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(bucket, path)
	cp := make([]byte, len(content))
	copy(cp, content)
	m.data[k] = cp
	m.types[k] = contentType
	return nil
}

func (m *MemStore) Get(_ context.Context, bucket, path string) ([]byte, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(bucket, path)
	b, ok := m.data[k]
	if !ok {
		return nil, "", ErrNotExist
	}
	return b, m.types[k], nil
}

func (m *MemStore) Exists(_ context.Context, bucket, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[m.key(bucket, path)]
	return ok, nil
}

func (m *MemStore) List(_ context.Context, bucket, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var paths []string
	pre := bucket + "/"
	for k := range m.data {
		if !strings.HasPrefix(k, pre) {
			continue
		}
		p := strings.TrimPrefix(k, pre)
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
