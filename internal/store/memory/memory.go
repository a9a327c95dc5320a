// Package memory provides the in-process store backend, used by
// default and as the test double for the durable backends.
package memory

import (
	"context"
	"sync"

	"github.com/monisha-uniforms/storefront/internal/store"
)

// Store keeps documents in a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	docs map[store.Key][]byte
	bus  *store.Bus
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		docs: make(map[store.Key][]byte),
		bus:  store.NewBus(),
	}
}

func (s *Store) Get(_ context.Context, key store.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *Store) Set(_ context.Context, key store.Key, doc []byte) error {
	copied := make([]byte, len(doc))
	copy(copied, doc)

	s.mu.Lock()
	s.docs[key] = copied
	s.mu.Unlock()

	s.bus.Publish(key)
	return nil
}

func (s *Store) Subscribe(key store.Key, fn func(store.Event)) func() {
	return s.bus.Subscribe(key, fn)
}

func (s *Store) Close() error {
	return nil
}
