package repository

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// ParentOrderRepository persists individual-student orders.
type ParentOrderRepository interface {
	Append(ctx context.Context, order model.ParentOrder) error
	List(ctx context.Context) ([]model.ParentOrder, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.ParentOrder, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.ParentOrder, error)
}
