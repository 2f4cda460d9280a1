package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery_Valid(t *testing.T) {
	orderID, _ := kernel.NewOrderID(42)
	query, err := queries.NewGetOrderStatusQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderStatusQuery_UnassignedID(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(kernel.OrderID(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}
