package usecase

import (
	"go.uber.org/fx"

	"github.com/monisha-uniforms/storefront/internal/adapter/catalog"
	"github.com/monisha-uniforms/storefront/internal/config"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newCatalogUseCase,
	NewCartUseCase,
	NewWishlistUseCase,
	NewSchoolUseCase,
	newOrderUseCase,
)

func newCatalogUseCase(service *catalog.Service) *CatalogUseCase {
	return NewCatalogUseCase(service)
}

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Schools repository.SchoolRepository
	Parents repository.ParentOrderRepository
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Schools, p.Parents, p.Config.AllowDuplicateItems)
}
