package repository

import (
	"context"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// OrderRepository persists bulk order records. The backing store is a
// whole-list document per key: appends read, extend and rewrite the
// list, preserving insertion order.
type OrderRepository interface {
	Append(ctx context.Context, record model.OrderRecord) error
	List(ctx context.Context) ([]model.OrderRecord, error)
	GetByID(ctx context.Context, id string) (*model.OrderRecord, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.OrderRecord, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.OrderRecord, error)
}
