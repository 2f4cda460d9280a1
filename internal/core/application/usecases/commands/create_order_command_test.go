package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	clientID, _ := kernel.NewClientID(123)
	creationDate := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateOrderCommand(clientID, creationDate)
	require.NoError(t, err)
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, creationDate, cmd.CreationDate())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidClientID(t *testing.T) {
	invalidID := kernel.ClientID(0) // unassigned, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_ZeroCreationDate(t *testing.T) {
	clientID, _ := kernel.NewClientID(123)
	_, err := commands.NewCreateOrderCommand(clientID, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
