package storage

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/store"
)

type cartRepository struct {
	storage *Storage
}

func (r *cartRepository) List(ctx context.Context) ([]model.CartItem, error) {
	return store.GetList[model.CartItem](ctx, r.storage.store, store.KeyCart, r.storage.logger)
}

func (r *cartRepository) Replace(ctx context.Context, items []model.CartItem) error {
	return store.SetList(ctx, r.storage.store, store.KeyCart, items)
}

type wishlistRepository struct {
	storage *Storage
}

func (r *wishlistRepository) List(ctx context.Context) ([]model.WishlistItem, error) {
	return store.GetList[model.WishlistItem](ctx, r.storage.store, store.KeyWishlist, r.storage.logger)
}

func (r *wishlistRepository) Replace(ctx context.Context, items []model.WishlistItem) error {
	return store.SetList(ctx, r.storage.store, store.KeyWishlist, items)
}
