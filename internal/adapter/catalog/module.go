package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/monisha-uniforms/storefront/internal/config"
)

// Module exposes the catalog client and fallback service to the fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(NewService),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.CatalogAddress, p.Logger)
}
