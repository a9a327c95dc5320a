package di

import (
	"go.uber.org/fx"

	"github.com/monisha-uniforms/storefront/internal/adapter/catalog"
	"github.com/monisha-uniforms/storefront/internal/app"
	"github.com/monisha-uniforms/storefront/internal/config"
	"github.com/monisha-uniforms/storefront/internal/logger"
	"github.com/monisha-uniforms/storefront/internal/server/http/router"
	"github.com/monisha-uniforms/storefront/internal/storage"
	"github.com/monisha-uniforms/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		catalog.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
