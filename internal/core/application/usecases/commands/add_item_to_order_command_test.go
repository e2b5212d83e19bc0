package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemToOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("valid without explicit price", func(t *testing.T) {
		cmd, err := commands.NewAddItemToOrderCommand(orderID.String(), "SKU-001", 2, "EUR", nil)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "SKU-001", cmd.SKU())
		assert.Equal(t, 2, cmd.Qty())
		assert.Equal(t, kernel.CurrencyEUR, cmd.Currency())

		_, supplied := cmd.UnitPrice()
		assert.False(t, supplied)
	})

	t.Run("valid with explicit price", func(t *testing.T) {
		cmd, err := commands.NewAddItemToOrderCommand(orderID.String(), "SKU-001", 1, "USD", floatPtr(9.99))
		require.NoError(t, err)

		price, supplied := cmd.UnitPrice()
		assert.True(t, supplied)
		assert.InDelta(t, 9.99, price, 1e-9)
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		_, err := commands.NewAddItemToOrderCommand("", "x", 0, "GBP", nil)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Required", validationErr.Details["orderId"])
		assert.Equal(t, "Invalid SKU format", validationErr.Details["sku"])
		assert.Equal(t, "Quantity must be a positive integer", validationErr.Details["qty"])
		assert.Equal(t, "Unsupported currency", validationErr.Details["currency"])
	})

	t.Run("malformed order id", func(t *testing.T) {
		_, err := commands.NewAddItemToOrderCommand("not-a-uuid", "SKU-001", 1, "EUR", nil)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid order id format", validationErr.Details["orderId"])
	})

	t.Run("sku format", func(t *testing.T) {
		tests := []struct {
			sku   string
			valid bool
		}{
			{"SKU-001", true},
			{"abc", true},
			{"A1-b2-C3", true},
			{"ab", false},
			{"has space", false},
			{"under_score", false},
			{"0123456789012345678901234567890", false},
		}

		for _, test := range tests {
			t.Run(test.sku, func(t *testing.T) {
				_, err := commands.NewAddItemToOrderCommand(orderID.String(), test.sku, 1, "EUR", nil)
				if test.valid {
					assert.NoError(t, err)
				} else {
					var validationErr *errs.ValidationError
					require.ErrorAs(t, err, &validationErr)
					assert.Equal(t, "Invalid SKU format", validationErr.Details["sku"])
				}
			})
		}
	})

	t.Run("negative explicit price", func(t *testing.T) {
		_, err := commands.NewAddItemToOrderCommand(orderID.String(), "SKU-001", 1, "EUR", floatPtr(-1))

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Unit price must be a non-negative number", validationErr.Details["unitPrice"])
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AddItemToOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddItemToOrderCommandIsNotConstructed)
	})
}
