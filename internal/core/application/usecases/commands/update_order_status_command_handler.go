package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// transitions. It loads the order, validates the move through the workflow
// state machine, persists the new status plus a history entry in one
// transaction, and runs the cache/notifier writes as post-commit hooks.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, cache, notifier)
//	orderID, _ := kernel.NewOrderID(42)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Paid)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.StatusCache
	notifier   ports.StatusNotifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update
// operations. Requires an OrderUoWFactory for transactional persistence and
// the cache and notifier the post-commit hooks write to.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.StatusCache,
	notifier ports.StatusNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
//
// An unknown order id fails with an ObjectNotFoundError and an illegal
// transition with an InvalidTransitionError, both before any write. Store
// failures are wrapped as a PersistenceError and roll the transaction back.
// Cache and notifier writes run after the commit and cannot fail the call.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewPersistenceError("updating order status", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, errs.NewPersistenceError("updating order status", err)
	}

	uow.RegisterPostCommit(func(ctx context.Context) error {
		return h.cache.SetStatus(ctx, aggregate.ID(), aggregate.Status())
	})
	uow.RegisterPostCommit(func(ctx context.Context) error {
		return h.notifier.PublishStatusChange(ctx, aggregate.ID(), aggregate.ClientID(), aggregate.Status())
	})

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("updating order status", err)
	}

	return aggregate, nil
}
