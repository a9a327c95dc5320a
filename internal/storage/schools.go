package storage

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/store"
)

type schoolRepository struct {
	storage *Storage
}

func (r *schoolRepository) Append(ctx context.Context, school model.School) error {
	schools, err := store.GetList[model.School](ctx, r.storage.store, store.KeySchools, r.storage.logger)
	if err != nil {
		return err
	}
	return store.SetList(ctx, r.storage.store, store.KeySchools, append(schools, school))
}

func (r *schoolRepository) List(ctx context.Context) ([]model.School, error) {
	return store.GetList[model.School](ctx, r.storage.store, store.KeySchools, r.storage.logger)
}
