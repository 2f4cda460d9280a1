package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order for a client.
// The creation date is supplied by the caller; whether it lies in the future
// is decided by the handler against its own clock.
//
// Example:
//
//	clientID, _ := kernel.NewClientID(123)
//	cmd, err := NewCreateOrderCommand(clientID, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.ClientID
	creationDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the client id is positive and the creation date is set.
// Returns an error if any validation fails.
func NewCreateOrderCommand(clientID kernel.ClientID, creationDate time.Time) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClientID(clientID),
		orderCommand.setCreationDate(creationDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the identifier of the client placing the order.
func (c CreateOrderCommand) ClientID() kernel.ClientID {
	return c.clientID
}

// CreationDate returns the caller-supplied creation timestamp.
func (c CreateOrderCommand) CreationDate() time.Time {
	return c.creationDate
}

func (c *CreateOrderCommand) setClientID(clientID kernel.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCreationDate(creationDate time.Time) error {
	if creationDate.IsZero() {
		return errs.NewValueIsRequiredError("creation date")
	}

	c.creationDate = creationDate
	return nil
}
