// Package storage implements the domain repositories over the keyed
// document store. Every collection is one JSON array under its key;
// appends read the list, extend it and write it back whole. Writes are
// last-writer-wins by contract, acceptable in a single-process system.
package storage

import (
	"log/slog"

	"github.com/monisha-uniforms/storefront/internal/domain/repository"
	"github.com/monisha-uniforms/storefront/internal/store"
)

// Storage is the repository factory backed by a store.Store.
type Storage struct {
	store  store.Store
	logger *slog.Logger
}

// New wraps a document store with domain repositories.
func New(s store.Store, logger *slog.Logger) *Storage {
	return &Storage{store: s, logger: logger}
}

// Store exposes the underlying document store for change subscriptions.
func (s *Storage) Store() store.Store {
	return s.store
}

// Close releases the underlying store.
func (s *Storage) Close() error {
	return s.store.Close()
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Schools() repository.SchoolRepository {
	return &schoolRepository{storage: s}
}

func (s *Storage) Cart() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Wishlist() repository.WishlistRepository {
	return &wishlistRepository{storage: s}
}

func (s *Storage) ParentOrders() repository.ParentOrderRepository {
	return &parentOrderRepository{storage: s}
}
