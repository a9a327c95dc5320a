package repository

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// CartRepository stores the shopping cart as a whole list; merge and
// clamp rules live in the use case layer.
type CartRepository interface {
	List(ctx context.Context) ([]model.CartItem, error)
	Replace(ctx context.Context, items []model.CartItem) error
}

// WishlistRepository stores saved products as a whole list.
type WishlistRepository interface {
	List(ctx context.Context) ([]model.WishlistItem, error)
	Replace(ctx context.Context, items []model.WishlistItem) error
}
