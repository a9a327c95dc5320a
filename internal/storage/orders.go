package storage

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/store"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) Append(ctx context.Context, record model.OrderRecord) error {
	records, err := store.GetList[model.OrderRecord](ctx, r.storage.store, store.KeyBulkOrders, r.storage.logger)
	if err != nil {
		return err
	}
	return store.SetList(ctx, r.storage.store, store.KeyBulkOrders, append(records, record))
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderRecord, error) {
	return store.GetList[model.OrderRecord](ctx, r.storage.store, store.KeyBulkOrders, r.storage.logger)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.OrderRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.OrderRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.OrderRecord
	for _, rec := range records {
		if rec.Status != status {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.OrderRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if rec.ID != id {
			continue
		}
		if !rec.Status.CanTransition(status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		records[i].Status = status
		if err := store.SetList(ctx, r.storage.store, store.KeyBulkOrders, records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}
