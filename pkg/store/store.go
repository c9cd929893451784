// Package store holds the durable key-value backends used for client side
// state such as the warning ledger.
package store

import (
	"context"
	"fmt"
	"sync"
)

// KV is a small durable key-value store. Get reports found=false for a key
// that was never written.
type KV interface {
	fmt.Stringer
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ KV = &memoryStore{}

// NewMemory returns a KV that lives as long as the process.
func NewMemory() KV {
	return &memoryStore{entries: map[string][]byte{}}
}

func (ms *memoryStore) String() string {
	return "memory"
}

func (ms *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	v, found := ms.entries[key]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (ms *memoryStore) Put(_ context.Context, key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[key] = append([]byte(nil), value...)
	return nil
}
