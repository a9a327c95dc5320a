package app

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/registry"
	"github.com/monisha-uniforms/storefront/internal/usecase"
)

// StorefrontFacade is the single application surface the transports and
// workers talk to.
type StorefrontFacade struct {
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	wishlist *usecase.WishlistUseCase
	schools  *usecase.SchoolUseCase
	orders   *usecase.OrderUseCase
}

func NewStorefrontFacade(
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	wishlist *usecase.WishlistUseCase,
	schools *usecase.SchoolUseCase,
	orders *usecase.OrderUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		catalog:  catalog,
		cart:     cart,
		wishlist: wishlist,
		schools:  schools,
		orders:   orders,
	}
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, bool, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, bool, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) RecentProducts(ctx context.Context, limit int) ([]model.Product, bool, error) {
	return f.catalog.Recent(ctx, limit)
}

func (f *StorefrontFacade) TopRatedProducts(ctx context.Context, limit int) ([]model.Product, bool, error) {
	return f.catalog.TopRated(ctx, limit)
}

func (f *StorefrontFacade) Cart(ctx context.Context) ([]model.CartItem, error) {
	return f.cart.List(ctx)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error) {
	return f.cart.Add(ctx, item)
}

func (f *StorefrontFacade) UpdateCartQuantity(ctx context.Context, productID int64, size string, quantity int) ([]model.CartItem, error) {
	return f.cart.UpdateQuantity(ctx, productID, size, quantity)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, productID int64, size string) ([]model.CartItem, error) {
	return f.cart.Remove(ctx, productID, size)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context) error {
	return f.cart.Clear(ctx)
}

func (f *StorefrontFacade) CartSummary(ctx context.Context) (*model.CartSummary, error) {
	return f.cart.Summary(ctx)
}

func (f *StorefrontFacade) Wishlist(ctx context.Context) ([]model.WishlistItem, error) {
	return f.wishlist.List(ctx)
}

func (f *StorefrontFacade) AddToWishlist(ctx context.Context, item model.WishlistItem) ([]model.WishlistItem, error) {
	return f.wishlist.Add(ctx, item)
}

func (f *StorefrontFacade) RemoveFromWishlist(ctx context.Context, productID int64) ([]model.WishlistItem, error) {
	return f.wishlist.Remove(ctx, productID)
}

func (f *StorefrontFacade) MoveWishlistItemToCart(ctx context.Context, productID int64) ([]model.CartItem, error) {
	return f.wishlist.MoveToCart(ctx, productID)
}

func (f *StorefrontFacade) Schools(ctx context.Context, query string) ([]model.School, error) {
	return f.schools.Search(ctx, query)
}

func (f *StorefrontFacade) AddSchool(ctx context.Context, school model.School) error {
	return f.schools.Add(ctx, school)
}

func (f *StorefrontFacade) SubmitBulkOrder(ctx context.Context, in usecase.BulkOrderInput) (*model.OrderRecord, error) {
	return f.orders.Submit(ctx, in)
}

func (f *StorefrontFacade) BulkOrders(ctx context.Context) ([]model.OrderRecord, error) {
	return f.orders.List(ctx)
}

func (f *StorefrontFacade) BulkOrder(ctx context.Context, id string) (*model.OrderRecord, error) {
	return f.orders.Get(ctx, id)
}

func (f *StorefrontFacade) CancelBulkOrder(ctx context.Context, id string) (*model.OrderRecord, error) {
	return f.orders.Cancel(ctx, id)
}

func (f *StorefrontFacade) SubmitParentOrder(ctx context.Context, in usecase.ParentOrderInput) (*model.ParentOrder, error) {
	return f.orders.SubmitParent(ctx, in)
}

func (f *StorefrontFacade) ParentOrders(ctx context.Context) ([]model.ParentOrder, error) {
	return f.orders.ListParent(ctx)
}

func (f *StorefrontFacade) CancelParentOrder(ctx context.Context, id string) (*model.ParentOrder, error) {
	return f.orders.CancelParent(ctx, id)
}

func (f *StorefrontFacade) OrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.OrderRecord, error) {
	return f.orders.AwaitingSubmission(ctx, limit)
}

func (f *StorefrontFacade) MarkOrderSubmitted(ctx context.Context, id string) (*model.OrderRecord, error) {
	return f.orders.MarkSubmitted(ctx, id)
}

func (f *StorefrontFacade) ParentOrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.ParentOrder, error) {
	return f.orders.ParentAwaitingSubmission(ctx, limit)
}

func (f *StorefrontFacade) MarkParentOrderSubmitted(ctx context.Context, id string) (*model.ParentOrder, error) {
	return f.orders.MarkParentSubmitted(ctx, id)
}

func (f *StorefrontFacade) UniformTypes(category model.Category) []registry.ItemType {
	return registry.ItemTypes(category)
}

func (f *StorefrontFacade) Levels() []registry.Level {
	return registry.Levels()
}
