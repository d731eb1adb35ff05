package listquery

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned by a Store when no state was saved under a key.
var ErrNotFound = errors.New("list query state not found")

// Key identifies one persisted state: an owner's view.
type Key struct {
	Owner string
	View  string
}

// String returns the key as "owner/view".
func (k Key) String() string {
	return k.Owner + "/" + k.View
}

// Store is the persisted representation of list query states. Implementations
// hold opaque blobs; validation happens when the Manager decodes them.
type Store interface {
	Load(ctx context.Context, key Key) ([]byte, error)
	Save(ctx context.Context, key Key, data []byte) error
}

// Deleter is implemented by stores that can remove a saved state.
type Deleter interface {
	Delete(ctx context.Context, key Key) error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Key][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Key][]byte)}
}

// Load returns a copy of the blob saved under key.
func (s *MemoryStore) Load(_ context.Context, key Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

// Save replaces the blob under key.
func (s *MemoryStore) Save(_ context.Context, key Key, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(data)
	return nil
}

// Delete removes the blob under key; a missing key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
