package storage

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/store"
)

type parentOrderRepository struct {
	storage *Storage
}

func (r *parentOrderRepository) Append(ctx context.Context, order model.ParentOrder) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return store.SetList(ctx, r.storage.store, store.KeyParentOrders, append(orders, order))
}

func (r *parentOrderRepository) List(ctx context.Context) ([]model.ParentOrder, error) {
	return store.GetList[model.ParentOrder](ctx, r.storage.store, store.KeyParentOrders, r.storage.logger)
}

func (r *parentOrderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.ParentOrder, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.ParentOrder
	for _, o := range orders {
		if o.Status != status {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *parentOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.ParentOrder, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, o := range orders {
		if o.ID != id {
			continue
		}
		if !o.Status.CanTransition(status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		orders[i].Status = status
		if err := store.SetList(ctx, r.storage.store, store.KeyParentOrders, orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}
