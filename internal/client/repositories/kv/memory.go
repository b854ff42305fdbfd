package kv

import (
	"context"
	"sync"
)

// Write records one Set call on a MemoryRepository.
type Write struct {
	Key   string
	Value []byte
}

// MemoryRepository is a map-backed Repository. The Fail* fields inject
// errors per operation, FailSetKey only for Sets of the listed keys; Writes
// records every successful Set in order.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte

	FailGet    error
	FailSet    error
	FailDelete error
	FailSetKey map[string]error

	Writes []Write
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (m *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet != nil {
		return nil, storageErr("get", key, m.FailGet)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (m *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet != nil {
		return storageErr("set", key, m.FailSet)
	}
	if err, ok := m.FailSetKey[key]; ok {
		return storageErr("set", key, err)
	}
	v := append([]byte{}, value...)
	m.data[key] = v
	m.Writes = append(m.Writes, Write{Key: key, Value: v})
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, key string) error {
	return m.DeleteKeys(ctx, key)
}

func (m *MemoryRepository) DeleteKeys(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailDelete != nil {
		key := ""
		if len(keys) > 0 {
			key = keys[0]
		}
		return storageErr("delete", key, m.FailDelete)
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet != nil {
		return nil, storageErr("list", "", m.FailGet)
	}
	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		out[k] = append([]byte{}, v...)
	}
	return out, nil
}

func (m *MemoryRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailDelete != nil {
		return storageErr("clear", "", m.FailDelete)
	}
	m.data = make(map[string][]byte)
	return nil
}

// LastWrite returns the most recent Set for key.
func (m *MemoryRepository) LastWrite(key string) (Write, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.Writes) - 1; i >= 0; i-- {
		if m.Writes[i].Key == key {
			return m.Writes[i], true
		}
	}
	return Write{}, false
}
