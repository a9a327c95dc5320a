package catalog

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// SampleProducts returns the built-in offline catalog used when the
// live endpoint cannot be reached.
func SampleProducts() []model.Product {
	return []model.Product{
		{
			ID:         1,
			Name:       "Winter School Blazer",
			Price:      59.99,
			Images:     model.Images{"https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=800"},
			SchoolName: "Cambridge School",
			Rating:     4.8,
			Stock:      model.Stock{Count: 15},
			Sizes: []model.SizeOption{
				{Size: "S", InStock: true},
				{Size: "M", InStock: true},
				{Size: "L", InStock: true},
				{Size: "XL", InStock: false},
			},
			Type:     "Winter Wear",
			Category: "winter",
		},
		{
			ID:         2,
			Name:       "Summer School Shirt",
			Price:      24.99,
			Images:     model.Images{"https://images.unsplash.com/photo-1541829070764-84a7d30dd3f3?w=800"},
			SchoolName: "Delhi Public School",
			Rating:     4.5,
			Stock:      model.Stock{Count: 8},
			Sizes: []model.SizeOption{
				{Size: "S", InStock: true},
				{Size: "M", InStock: true},
				{Size: "L", InStock: false},
				{Size: "XL", InStock: true},
			},
			Type:     "Summer Wear",
			Category: "summer",
		},
		{
			ID:         3,
			Name:       "Sports Uniform",
			Price:      79.99,
			Images:     model.Images{"https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=800"},
			SchoolName: "Cambridge School",
			Type:       "Sports",
			Category:   "sports",
			Rating:     4.6,
			Stock:      model.Stock{Count: 12},
			Reviews:    156,
		},
		{
			ID:         4,
			Name:       "Summer Uniform Set",
			Price:      89.99,
			Images:     model.Images{"https://images.unsplash.com/photo-1604671801908-6f0c6a092c05?w=800"},
			SchoolName: "Ryan International",
			Type:       "Regular",
			Category:   "summer",
			Rating:     4.7,
			Stock:      model.Stock{Count: 10},
			Reviews:    142,
		},
	}
}

// Service wraps a Client with offline fallback. Every read reports
// whether it was served from the sample set so callers can surface the
// degradation.
type Service struct {
	client Client
	logger *slog.Logger
}

// NewService wraps client with the sample-set fallback.
func NewService(client Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Products lists the catalog, degrading to samples on any client error.
func (s *Service) Products(ctx context.Context) ([]model.Product, bool, error) {
	products, err := s.client.List(ctx)
	if err != nil {
		s.logger.Warn("catalog unreachable, serving sample products", slog.String("error", err.Error()))
		return SampleProducts(), true, nil
	}
	return products, false, nil
}

// Product fetches one product. A live miss or an unreachable endpoint
// falls through to the sample set; only a miss in both is a not-found.
func (s *Service) Product(ctx context.Context, id int64) (*model.Product, bool, error) {
	product, err := s.client.Get(ctx, id)
	if err == nil {
		return product, false, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		s.logger.Warn("catalog unreachable, serving sample product", slog.String("error", err.Error()))
	}
	for _, p := range SampleProducts() {
		if p.ID == id {
			sample := p
			return &sample, true, nil
		}
	}
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, err
	}
	return nil, true, domainErrors.ErrNotFound
}
