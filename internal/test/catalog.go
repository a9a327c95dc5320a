package test

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// CatalogClientStub serves a fixed product list without a live endpoint.
type CatalogClientStub struct {
	Products []model.Product
	Err      error
}

// List returns the configured products.
func (s *CatalogClientStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// Get looks up a product by its numeric identifier.
func (s *CatalogClientStub) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
