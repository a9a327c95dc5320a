package test

import (
	"context"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// OrderRepositoryStub stores bulk orders in memory for tests.
type OrderRepositoryStub struct {
	Records []model.OrderRecord
	Err     error

	AppendFn       func(context.Context, model.OrderRecord) error
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.OrderRecord, error)
}

// Append tracks records unless the stub has an explicit error.
func (s *OrderRepositoryStub) Append(ctx context.Context, record model.OrderRecord) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, record)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Records = append(s.Records, record)
	return nil
}

// List returns stored records.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// GetByID returns the matching record or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, rec := range s.Records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByStatus filters stored records by status.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.OrderRecord
	for _, rec := range s.Records {
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

// UpdateStatus applies the transition in place, honoring the status
// machine.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.OrderRecord, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i, rec := range s.Records {
		if rec.ID != id {
			continue
		}
		if !rec.Status.CanTransition(status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		s.Records[i].Status = status
		updated := s.Records[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SchoolRepositoryStub stores schools in memory for tests.
type SchoolRepositoryStub struct {
	Schools []model.School
	Err     error
}

// Append tracks schools unless the stub has an explicit error.
func (s *SchoolRepositoryStub) Append(ctx context.Context, school model.School) error {
	if s.Err != nil {
		return s.Err
	}
	s.Schools = append(s.Schools, school)
	return nil
}

// List returns stored schools.
func (s *SchoolRepositoryStub) List(ctx context.Context) ([]model.School, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Schools, nil
}

// CartRepositoryStub stores cart items in memory for tests.
type CartRepositoryStub struct {
	Items []model.CartItem
	Err   error
}

// List returns stored items.
func (s *CartRepositoryStub) List(ctx context.Context) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.CartItem, len(s.Items))
	copy(items, s.Items)
	return items, nil
}

// Replace swaps the whole list.
func (s *CartRepositoryStub) Replace(ctx context.Context, items []model.CartItem) error {
	if s.Err != nil {
		return s.Err
	}
	s.Items = items
	return nil
}

// WishlistRepositoryStub stores wishlist items in memory for tests.
type WishlistRepositoryStub struct {
	Items []model.WishlistItem
	Err   error
}

// List returns stored items.
func (s *WishlistRepositoryStub) List(ctx context.Context) ([]model.WishlistItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.WishlistItem, len(s.Items))
	copy(items, s.Items)
	return items, nil
}

// Replace swaps the whole list.
func (s *WishlistRepositoryStub) Replace(ctx context.Context, items []model.WishlistItem) error {
	if s.Err != nil {
		return s.Err
	}
	s.Items = items
	return nil
}

// ParentOrderRepositoryStub stores parent orders in memory for tests.
type ParentOrderRepositoryStub struct {
	Orders []model.ParentOrder
	Err    error
}

// Append tracks orders unless the stub has an explicit error.
func (s *ParentOrderRepositoryStub) Append(ctx context.Context, order model.ParentOrder) error {
	if s.Err != nil {
		return s.Err
	}
	s.Orders = append(s.Orders, order)
	return nil
}

// List returns stored orders.
func (s *ParentOrderRepositoryStub) List(ctx context.Context) ([]model.ParentOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

// ListByStatus filters stored orders by status.
func (s *ParentOrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.ParentOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.ParentOrder
	for _, o := range s.Orders {
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

// UpdateStatus applies the transition in place, honoring the status
// machine.
func (s *ParentOrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.ParentOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i, o := range s.Orders {
		if o.ID != id {
			continue
		}
		if !o.Status.CanTransition(status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		s.Orders[i].Status = status
		updated := s.Orders[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}
