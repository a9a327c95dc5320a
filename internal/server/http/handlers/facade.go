package handlers

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/registry"
	"github.com/monisha-uniforms/storefront/internal/usecase"
)

// CatalogFacade describes catalog reads exposed via HTTP. The boolean
// reports whether the result was served from the offline sample set.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, bool, error)
	Product(ctx context.Context, id int64) (*model.Product, bool, error)
	RecentProducts(ctx context.Context, limit int) ([]model.Product, bool, error)
	TopRatedProducts(ctx context.Context, limit int) ([]model.Product, bool, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context) ([]model.CartItem, error)
	AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error)
	UpdateCartQuantity(ctx context.Context, productID int64, size string, quantity int) ([]model.CartItem, error)
	RemoveFromCart(ctx context.Context, productID int64, size string) ([]model.CartItem, error)
	ClearCart(ctx context.Context) error
	CartSummary(ctx context.Context) (*model.CartSummary, error)
}

// WishlistFacade encapsulates wishlist operations exposed via HTTP.
type WishlistFacade interface {
	Wishlist(ctx context.Context) ([]model.WishlistItem, error)
	AddToWishlist(ctx context.Context, item model.WishlistItem) ([]model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, productID int64) ([]model.WishlistItem, error)
	MoveWishlistItemToCart(ctx context.Context, productID int64) ([]model.CartItem, error)
}

// SchoolFacade encapsulates partner-school operations exposed via HTTP.
type SchoolFacade interface {
	Schools(ctx context.Context, query string) ([]model.School, error)
	AddSchool(ctx context.Context, school model.School) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitBulkOrder(ctx context.Context, in usecase.BulkOrderInput) (*model.OrderRecord, error)
	BulkOrders(ctx context.Context) ([]model.OrderRecord, error)
	BulkOrder(ctx context.Context, id string) (*model.OrderRecord, error)
	CancelBulkOrder(ctx context.Context, id string) (*model.OrderRecord, error)
	SubmitParentOrder(ctx context.Context, in usecase.ParentOrderInput) (*model.ParentOrder, error)
	ParentOrders(ctx context.Context) ([]model.ParentOrder, error)
	CancelParentOrder(ctx context.Context, id string) (*model.ParentOrder, error)
}

// RegistryFacade exposes the static uniform and level registries.
type RegistryFacade interface {
	UniformTypes(category model.Category) []registry.ItemType
	Levels() []registry.Level
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	CartFacade
	WishlistFacade
	SchoolFacade
	OrderFacade
	RegistryFacade
}
