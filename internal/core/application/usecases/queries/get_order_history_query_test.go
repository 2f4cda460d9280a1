package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_Valid(t *testing.T) {
	orderID, _ := kernel.NewOrderID(42)
	query, err := queries.NewGetOrderHistoryQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderHistoryQuery_UnassignedID(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.OrderID(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
