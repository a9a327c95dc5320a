package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/monisha-uniforms/storefront/internal/config"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
	"github.com/monisha-uniforms/storefront/internal/store"
	"github.com/monisha-uniforms/storefront/internal/store/memory"
	"github.com/monisha-uniforms/storefront/internal/store/postgres"
	"github.com/monisha-uniforms/storefront/internal/store/sqlite"
)

// Module wires the document store backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(New),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.SchoolRepository { return s.Schools() },
		func(s *Storage) repository.CartRepository { return s.Cart() },
		func(s *Storage) repository.WishlistRepository { return s.Wishlist() },
		func(s *Storage) repository.ParentOrderRepository { return s.ParentOrders() },
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newStore picks the backend from configuration: PostgreSQL when a
// database URI is set, SQLite when a store path is set, otherwise an
// in-process map that lives for the run.
func newStore(p storeParams) (store.Store, error) {
	switch {
	case p.Config.DatabaseURI != "":
		return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case p.Config.StorePath != "":
		return sqlite.Open(p.Config.StorePath, p.Logger)
	default:
		return memory.New(), nil
	}
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})
}
