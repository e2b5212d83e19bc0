package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// PricingService resolves the current unit price of a product in a given
// currency. Returns an ObjectNotFoundError when no price is available for
// the sku/currency pair, or an InfrastructureError when the lookup itself
// fails. The core treats both as a business condition, not a backend fault.
type PricingService interface {
	GetCurrentPrice(ctx context.Context, sku string, currency kernel.Currency) (kernel.Money, error)
}
