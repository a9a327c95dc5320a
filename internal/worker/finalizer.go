package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	OrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.OrderRecord, error)
	MarkOrderSubmitted(ctx context.Context, id string) (*model.OrderRecord, error)
	ParentOrdersAwaitingSubmission(ctx context.Context, limit int) ([]model.ParentOrder, error)
	MarkParentOrderSubmitted(ctx context.Context, id string) (*model.ParentOrder, error)
}

type job struct {
	ID     string
	Parent bool
}

// OrderFinalizer moves pending orders to submitted after the poll
// delay, concurrently across a worker pool.
type OrderFinalizer struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderFinalizer constructs the finalizer worker pool.
func NewOrderFinalizer(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OrderFinalizer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderFinalizer{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan job, batchSize*workers),
	}
}

// Start launches background processing.
func (p *OrderFinalizer) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *OrderFinalizer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *OrderFinalizer) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *OrderFinalizer) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersAwaitingSubmission(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending orders failed", slog.String("error", err.Error()))
	} else {
		for _, order := range orders {
			select {
			case <-ctx.Done():
				return
			case p.jobs <- job{ID: order.ID}:
			}
		}
	}

	parentOrders, err := p.facade.ParentOrdersAwaitingSubmission(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending parent orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range parentOrders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- job{ID: order.ID, Parent: true}:
		}
	}
}

func (p *OrderFinalizer) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			p.finalize(ctx, j)
		}
	}
}

func (p *OrderFinalizer) finalize(ctx context.Context, j job) {
	var err error
	if j.Parent {
		_, err = p.facade.MarkParentOrderSubmitted(ctx, j.ID)
	} else {
		_, err = p.facade.MarkOrderSubmitted(ctx, j.ID)
	}
	if err == nil {
		p.logger.Info("order submitted", slog.String("order", j.ID), slog.Bool("parent", j.Parent))
		return
	}
	// Cancelled between dispatch and finalize, or already picked up by
	// another worker. Nothing to do.
	if errors.Is(err, domainErrors.ErrInvalidTransition) || errors.Is(err, domainErrors.ErrNotFound) {
		return
	}
	p.logger.Error("finalize order failed", slog.String("order", j.ID), slog.String("error", err.Error()))
}
