package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It persists the order and its first history entry in one transaction, then
// mirrors the status into the cache and publishes a change event as
// post-commit hooks.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, cache, notifier)
//	clientID, _ := kernel.NewClientID(123)
//	cmd, _ := NewCreateOrderCommand(clientID, time.Now())
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() now carries the store-assigned identifier
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.StatusCache
	notifier   ports.StatusNotifier

	// now is the clock the future-date check reads. Tests pin it to a fixed
	// instant to exercise the exact acceptance boundary.
	now func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence and
// the cache and notifier the post-commit hooks write to.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.StatusCache,
	notifier ports.StatusNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
//
// A creation date strictly after the handler's clock is rejected before any
// write; equal to now is accepted. Store failures are wrapped as a
// PersistenceError and roll the transaction back, leaving no partial rows.
// Cache and notifier writes run after the commit and cannot fail the call.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	nowFn := h.now
	if nowFn == nil {
		nowFn = time.Now
	}

	now := nowFn()
	if cmd.CreationDate().After(now) {
		return nil, order.NewCreationDateInFutureError(cmd.CreationDate(), now)
	}

	newOrder, err := order.NewOrder(cmd.ClientID(), cmd.CreationDate())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.NewPersistenceError("creating order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, errs.NewPersistenceError("creating order", err)
	}

	uow.RegisterPostCommit(func(ctx context.Context) error {
		return h.cache.SetStatus(ctx, newOrder.ID(), newOrder.Status())
	})
	uow.RegisterPostCommit(func(ctx context.Context) error {
		return h.notifier.PublishStatusChange(ctx, newOrder.ID(), newOrder.ClientID(), newOrder.Status())
	})

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("creating order", err)
	}

	return newOrder, nil
}
