package commands

import (
	"errors"
	"math"
	"regexp"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrAddItemToOrderCommandIsNotConstructed = errors.New(
	"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
)

// skuPattern is the accepted shape of a stock-keeping unit identifier.
var skuPattern = regexp.MustCompile(`^[A-Za-z0-9-]{3,30}$`)

// AddItemToOrderCommand represents a request to add a product line to an
// existing order. The unit price is optional: when absent, the handler
// resolves it through the pricing port for the sku and currency.
type AddItemToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sku       string
	qty       int
	currency  kernel.Currency
	unitPrice *float64

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand creates a command to add an item to an order.
// All structural validation happens here; failures are collected into one
// ValidationError with a field-to-message detail map, covering every
// offending field in a single pass:
//
//   - orderId: required, valid id format
//   - sku: must match [A-Za-z0-9-]{3,30}
//   - qty: positive integer
//   - currency: one of EUR, USD
//   - unitPrice: when supplied, finite and non-negative
func NewAddItemToOrderCommand(orderID, sku string, qty int, currency string, unitPrice *float64) (AddItemToOrderCommand, error) {
	cmd := AddItemToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	details := make(map[string]string)

	if orderID == "" {
		details["orderId"] = "Required"
	} else if id, err := kernel.UUIDFromString(orderID); err != nil {
		details["orderId"] = "Invalid order id format"
	} else {
		cmd.orderID = id
	}

	if !skuPattern.MatchString(sku) {
		details["sku"] = "Invalid SKU format"
	}
	cmd.sku = sku

	if qty <= 0 {
		details["qty"] = "Quantity must be a positive integer"
	}
	cmd.qty = qty

	parsedCurrency, err := kernel.CurrencyFromString(currency)
	if err != nil {
		details["currency"] = "Unsupported currency"
	}
	cmd.currency = parsedCurrency

	if unitPrice != nil {
		if math.IsNaN(*unitPrice) || math.IsInf(*unitPrice, 0) || *unitPrice < 0 {
			details["unitPrice"] = "Unit price must be a non-negative number"
		} else {
			price := *unitPrice
			cmd.unitPrice = &price
		}
	}

	if len(details) > 0 {
		return AddItemToOrderCommand{}, errs.NewValidationErrorWithDetails("Invalid input", details)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddItemToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SKU returns the product identifier.
func (c AddItemToOrderCommand) SKU() string {
	return c.sku
}

// Qty returns the quantity to add.
func (c AddItemToOrderCommand) Qty() int {
	return c.qty
}

// Currency returns the requested settlement currency.
func (c AddItemToOrderCommand) Currency() kernel.Currency {
	return c.currency
}

// UnitPrice returns the caller-supplied unit price and whether one was
// given.
func (c AddItemToOrderCommand) UnitPrice() (float64, bool) {
	if c.unitPrice == nil {
		return 0, false
	}
	return *c.unitPrice, true
}
