package usecase

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
)

// Shipping is free above the subtotal threshold, flat otherwise.
const (
	freeShippingThreshold = 299.0
	flatShippingRate      = 29.99
)

// CartUseCase encapsulates shopping cart logic. Cart entries are keyed
// by product id plus size; adding an existing entry merges quantities.
type CartUseCase struct {
	cart repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(cart repository.CartRepository) *CartUseCase {
	return &CartUseCase{cart: cart}
}

// List returns the current cart contents.
func (u *CartUseCase) List(ctx context.Context) ([]model.CartItem, error) {
	return u.cart.List(ctx)
}

// Add puts an item into the cart. Quantity is clamped to at least one;
// an existing entry for the same product and size absorbs the quantity.
func (u *CartUseCase) Add(ctx context.Context, item model.CartItem) ([]model.CartItem, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	items, err := u.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	merged := false
	for i, existing := range items {
		if existing.ProductID == item.ProductID && existing.Size == item.Size {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	if err := u.cart.Replace(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets an entry's quantity, clamped to at least one.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, productID int64, size string, quantity int) ([]model.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	items, err := u.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, existing := range items {
		if existing.ProductID == productID && existing.Size == size {
			items[i].Quantity = quantity
			if err := u.cart.Replace(ctx, items); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Remove deletes an entry. Removing an absent entry is a no-op.
func (u *CartUseCase) Remove(ctx context.Context, productID int64, size string) ([]model.CartItem, error) {
	items, err := u.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, existing := range items {
		if existing.ProductID == productID && existing.Size == size {
			continue
		}
		kept = append(kept, existing)
	}
	if err := u.cart.Replace(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context) error {
	return u.cart.Replace(ctx, nil)
}

// Summary totals the cart for checkout display.
func (u *CartUseCase) Summary(ctx context.Context) (*model.CartSummary, error) {
	items, err := u.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := &model.CartSummary{}
	for _, item := range items {
		summary.Items += item.Quantity
		summary.Subtotal += item.Price * float64(item.Quantity)
	}
	if summary.Items > 0 && summary.Subtotal <= freeShippingThreshold {
		summary.Shipping = flatShippingRate
	}
	summary.Total = summary.Subtotal + summary.Shipping
	return summary, nil
}
