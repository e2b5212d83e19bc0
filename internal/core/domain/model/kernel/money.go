package kernel

import (
	"fmt"
	"math"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money instance was not created
// through the NewMoney factory function.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Currency identifies a supported settlement currency. The set is closed:
// only EUR and USD are accepted.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// CurrencyFromString parses and validates a currency code.
func CurrencyFromString(s string) (Currency, error) {
	c := Currency(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the currency belongs to the supported set.
func (c Currency) Validate() error {
	switch c {
	case CurrencyEUR, CurrencyUSD:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a supported currency", string(c)))
	}
}

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	return string(c)
}

// Money is an immutable monetary value with a currency. The amount must be
// finite and non-negative; negative totals have no meaning for orders.
type Money struct {
	amount   float64
	currency Currency

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value, validating that the amount is a finite
// non-negative number and the currency is supported.
func NewMoney(amount float64, currency Currency) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// Validate ensures the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// String returns the amount followed by the currency code.
func (m Money) String() string {
	return fmt.Sprintf("%g %s", m.amount, m.currency)
}
