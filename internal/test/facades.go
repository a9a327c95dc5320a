package test

import (
	"context"
	"sync"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// WorkerFacadeStub simulates the application surface the finalizer
// worker polls. Guarded by its embedded mutex; tests lock around reads.
type WorkerFacadeStub struct {
	sync.Mutex

	Pending       []model.OrderRecord
	PendingParent []model.ParentOrder

	Submitted       []string
	SubmittedParent []string

	MarkFn func(ctx context.Context, id string) (*model.OrderRecord, error)
}

// OrdersAwaitingSubmission returns the still-pending bulk orders.
func (s *WorkerFacadeStub) OrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.OrderRecord, error) {
	s.Lock()
	defer s.Unlock()
	out := make([]model.OrderRecord, 0, len(s.Pending))
	for _, o := range s.Pending {
		out = append(out, o)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// MarkOrderSubmitted finalizes a pending bulk order and records the call.
func (s *WorkerFacadeStub) MarkOrderSubmitted(ctx context.Context, id string) (*model.OrderRecord, error) {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	s.Lock()
	defer s.Unlock()
	for i, o := range s.Pending {
		if o.ID == id {
			s.Pending = append(s.Pending[:i], s.Pending[i+1:]...)
			o.Status = model.OrderStatusSubmitted
			s.Submitted = append(s.Submitted, id)
			return &o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ParentOrdersAwaitingSubmission returns the still-pending parent orders.
func (s *WorkerFacadeStub) ParentOrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.ParentOrder, error) {
	s.Lock()
	defer s.Unlock()
	out := make([]model.ParentOrder, 0, len(s.PendingParent))
	for _, o := range s.PendingParent {
		out = append(out, o)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// MarkParentOrderSubmitted finalizes a pending parent order and records
// the call.
func (s *WorkerFacadeStub) MarkParentOrderSubmitted(ctx context.Context, id string) (*model.ParentOrder, error) {
	s.Lock()
	defer s.Unlock()
	for i, o := range s.PendingParent {
		if o.ID == id {
			s.PendingParent = append(s.PendingParent[:i], s.PendingParent[i+1:]...)
			o.Status = model.OrderStatusSubmitted
			s.SubmittedParent = append(s.SubmittedParent, id)
			return &o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
