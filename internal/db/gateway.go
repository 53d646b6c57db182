// Package db — реализации Persistence Gateway: непрозрачного key/value
// хранилища блобов, через которое round-trip'ится стор аллокаций.
package db

import (
	"context"
	"sync"
)

// Gateway — граница персистентности ядра. Load возвращает nil, nil для
// отсутствующего ключа; семантика ключей хранилищу неизвестна.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}

// MemoryGateway — in-memory реализация для тестов и headless-запусков.
type MemoryGateway struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{blobs: make(map[string][]byte)}
}

// Load returns the stored blob, or nil, nil if the key is absent.
func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	blob, ok := g.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Save stores a copy of the blob under the key.
func (g *MemoryGateway) Save(_ context.Context, key string, blob []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	g.blobs[key] = stored
	return nil
}

// Close is a no-op.
func (g *MemoryGateway) Close() error {
	return nil
}
