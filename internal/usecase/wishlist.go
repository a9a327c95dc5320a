package usecase

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
)

// WishlistUseCase encapsulates saved-product logic. The wishlist holds
// at most one entry per product.
type WishlistUseCase struct {
	wishlist repository.WishlistRepository
	cart     *CartUseCase
}

// NewWishlistUseCase constructs WishlistUseCase.
func NewWishlistUseCase(wishlist repository.WishlistRepository, cart *CartUseCase) *WishlistUseCase {
	return &WishlistUseCase{wishlist: wishlist, cart: cart}
}

// List returns the saved products.
func (u *WishlistUseCase) List(ctx context.Context) ([]model.WishlistItem, error) {
	return u.wishlist.List(ctx)
}

// Add saves a product. Saving an already saved product is rejected.
func (u *WishlistUseCase) Add(ctx context.Context, item model.WishlistItem) ([]model.WishlistItem, error) {
	items, err := u.wishlist.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	items = append(items, item)
	if err := u.wishlist.Replace(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops a saved product. Removing an absent one is a no-op.
func (u *WishlistUseCase) Remove(ctx context.Context, productID int64) ([]model.WishlistItem, error) {
	items, err := u.wishlist.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, existing := range items {
		if existing.ProductID == productID {
			continue
		}
		kept = append(kept, existing)
	}
	if err := u.wishlist.Replace(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// MoveToCart turns a saved product into a cart entry with quantity one,
// picking the first in-stock size, then drops it from the wishlist.
func (u *WishlistUseCase) MoveToCart(ctx context.Context, productID int64) ([]model.CartItem, error) {
	items, err := u.wishlist.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, saved := range items {
		if saved.ProductID != productID {
			continue
		}
		var size string
		for _, opt := range saved.Sizes {
			if opt.InStock {
				size = opt.Size
				break
			}
		}
		cartItems, err := u.cart.Add(ctx, model.CartItem{
			ProductID: saved.ProductID,
			Name:      saved.Name,
			Price:     saved.Price,
			Image:     saved.Image,
			Size:      size,
			Quantity:  1,
		})
		if err != nil {
			return nil, err
		}
		if _, err := u.Remove(ctx, productID); err != nil {
			return nil, err
		}
		return cartItems, nil
	}
	return nil, domainErrors.ErrNotFound
}
