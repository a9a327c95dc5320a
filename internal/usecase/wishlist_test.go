package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/test"
)

func newWishlistFixture(items ...model.WishlistItem) (*WishlistUseCase, *test.CartRepositoryStub) {
	cart := &test.CartRepositoryStub{}
	u := NewWishlistUseCase(&test.WishlistRepositoryStub{Items: items}, NewCartUseCase(cart))
	return u, cart
}

func TestWishlistAddRejectsDuplicate(t *testing.T) {
	u, _ := newWishlistFixture(model.WishlistItem{ProductID: 1, Name: "Blazer"})

	if _, err := u.Add(context.Background(), model.WishlistItem{ProductID: 1}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	items, err := u.Add(context.Background(), model.WishlistItem{ProductID: 2, Name: "Shirt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %+v", items)
	}
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	u, _ := newWishlistFixture(model.WishlistItem{ProductID: 1})

	items, err := u.Remove(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected untouched wishlist, got %+v", items)
	}
}

func TestWishlistMoveToCart(t *testing.T) {
	u, cart := newWishlistFixture(model.WishlistItem{
		ProductID: 1,
		Name:      "Winter School Blazer",
		Price:     59.99,
		Sizes: []model.SizeOption{
			{Size: "S", InStock: false},
			{Size: "M", InStock: true},
			{Size: "L", InStock: true},
		},
	})

	cartItems, err := u.MoveToCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cartItems) != 1 {
		t.Fatalf("expected 1 cart item, got %+v", cartItems)
	}
	if cartItems[0].Size != "M" || cartItems[0].Quantity != 1 {
		t.Fatalf("expected first in-stock size with quantity 1, got %+v", cartItems[0])
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart not persisted: %+v", cart.Items)
	}

	remaining, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected item moved out of wishlist, got %+v", remaining)
	}
}

func TestWishlistMoveToCartMissing(t *testing.T) {
	u, _ := newWishlistFixture()

	if _, err := u.MoveToCart(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
