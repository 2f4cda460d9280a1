package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID, _ := kernel.NewOrderID(42)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Paid)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Paid, cmd.Status())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.OrderID(0) // unassigned, should trigger validation error
	_, err := commands.NewUpdateOrderStatusCommand(invalidID, order.Paid)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	orderID, _ := kernel.NewOrderID(42)
	_, err := commands.NewUpdateOrderStatusCommand(orderID, order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
