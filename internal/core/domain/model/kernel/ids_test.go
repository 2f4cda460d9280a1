package kernel_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create order id from positive value", func(t *testing.T) {
		id, err := kernel.NewOrderID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.True(t, id.IsAssigned())
		assert.Equal(t, "42", id.String())
	})

	t.Run("should reject non-positive values", func(t *testing.T) {
		for _, value := range []int64{0, -1, -999} {
			t.Run(fmt.Sprintf("should reject %d", value), func(t *testing.T) {
				id, err := kernel.NewOrderID(value)

				require.Error(t, err)
				assert.Equal(t, kernel.OrderID(0), id)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "order id")
			})
		}
	})

	t.Run("zero value is not assigned", func(t *testing.T) {
		var id kernel.OrderID

		assert.False(t, id.IsAssigned())
		require.Error(t, id.Validate())
	})
}

func TestParseOrderID(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		id, err := kernel.ParseOrderID("123")

		require.NoError(t, err)
		assert.Equal(t, int64(123), id.Int64())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "12.5", "0", "-3"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				_, err := kernel.ParseOrderID(raw)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestNewClientID(t *testing.T) {
	t.Run("should create client id from positive value", func(t *testing.T) {
		id, err := kernel.NewClientID(7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
		assert.Equal(t, "7", id.String())
	})

	t.Run("should reject non-positive values", func(t *testing.T) {
		for _, value := range []int64{0, -1} {
			id, err := kernel.NewClientID(value)

			require.Error(t, err)
			assert.Equal(t, kernel.ClientID(0), id)
			assert.Contains(t, err.Error(), "client id")
		}
	})

	t.Run("order id and client id are distinct types", func(t *testing.T) {
		orderID, _ := kernel.NewOrderID(1)
		clientID, _ := kernel.NewClientID(1)

		assert.IsType(t, kernel.OrderID(0), orderID)
		assert.IsType(t, kernel.ClientID(0), clientID)
	})
}
