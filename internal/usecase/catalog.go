package usecase

import (
	"context"
	"sort"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// CatalogService is the product source, live or degraded to samples.
// The boolean reports whether the result came from the offline set.
type CatalogService interface {
	Products(ctx context.Context) ([]model.Product, bool, error)
	Product(ctx context.Context, id int64) (*model.Product, bool, error)
}

// CatalogUseCase exposes catalog browsing operations.
type CatalogUseCase struct {
	catalog CatalogService
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog CatalogService) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns every product.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, bool, error) {
	return u.catalog.Products(ctx)
}

// Get returns one product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, bool, error) {
	return u.catalog.Product(ctx, id)
}

// Recent returns the first limit products in catalog order.
func (u *CatalogUseCase) Recent(ctx context.Context, limit int) ([]model.Product, bool, error) {
	products, degraded, err := u.catalog.Products(ctx)
	if err != nil {
		return nil, degraded, err
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, degraded, nil
}

// TopRated returns the limit highest-rated products. Ties keep catalog
// order.
func (u *CatalogUseCase) TopRated(ctx context.Context, limit int) ([]model.Product, bool, error) {
	products, degraded, err := u.catalog.Products(ctx)
	if err != nil {
		return nil, degraded, err
	}
	ranked := make([]model.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, degraded, nil
}
