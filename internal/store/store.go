// Package store defines the process-wide keyed document store backing
// the storefront collections. Each key holds one JSON array; every
// write fires a typed change event naming the touched key, so
// listeners do not re-read everything on any change.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Key identifies one persisted collection.
type Key string

const (
	KeyCart         Key = "cart"
	KeyWishlist     Key = "wishlist"
	KeySchools      Key = "schools"
	KeyBulkOrders   Key = "bulkOrders"
	KeyParentOrders Key = "parentOrders"
)

// Keys lists every persisted collection.
func Keys() []Key {
	return []Key{KeyCart, KeyWishlist, KeySchools, KeyBulkOrders, KeyParentOrders}
}

// Event notifies subscribers of a write to a single key.
type Event struct {
	Key Key
}

// Store is a keyed JSON document store with per-key change
// notification. Writes are whole-document, last writer wins; the
// system is single-process, so no cross-writer coordination exists.
type Store interface {
	// Get returns the stored document, or nil when the key is absent.
	Get(ctx context.Context, key Key) ([]byte, error)
	// Set replaces the document and notifies the key's subscribers.
	Set(ctx context.Context, key Key, doc []byte) error
	// Subscribe registers fn for writes to key and returns an
	// unsubscribe function. Delivery is at-most-once per write, in
	// registration order.
	Subscribe(key Key, fn func(Event)) func()
	Close() error
}

type subscriber struct {
	id int
	fn func(Event)
}

// Bus dispatches per-key change events. Backends embed it so all of
// them share the same notification semantics.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Key][]subscriber
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Key][]subscriber)}
}

// Subscribe registers fn for writes to key.
func (b *Bus) Subscribe(key Key, fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs[key] = append(b.subs[key], subscriber{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[key]
		for i, s := range subs {
			if s.id == id {
				b.subs[key] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish notifies key subscribers in registration order. Callbacks
// run outside the bus lock so they may subscribe or write in turn.
func (b *Bus) Publish(key Key) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs[key]))
	copy(subs, b.subs[key])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(Event{Key: key})
	}
}

// DecodeList decodes a stored JSON array. A missing or malformed
// document degrades to an empty list; corruption is logged, never
// propagated to callers.
func DecodeList[T any](doc []byte, key Key, logger *slog.Logger) []T {
	if len(doc) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		logger.Warn("stored document malformed, treating as empty",
			slog.String("key", string(key)),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return items
}

// GetList reads and decodes the list under key.
func GetList[T any](ctx context.Context, s Store, key Key, logger *slog.Logger) ([]T, error) {
	doc, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](doc, key, logger), nil
}

// SetList encodes items and writes them under key. A nil slice is
// written as an empty array so readers always see a list.
func SetList[T any](ctx context.Context, s Store, key Key, items []T) error {
	if items == nil {
		items = []T{}
	}
	doc, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, doc)
}
