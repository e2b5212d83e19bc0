package order

import (
	"errors"
	"fmt"
	"math"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one order line: a product, a name, a
// positive quantity, and a non-negative unit price. Items are immutable; any
// change to a line (merging quantities, updating the quantity) produces a
// new Item instance.
type Item struct {
	productID string
	name      string
	quantity  int
	unitPrice float64
	metadata  map[string]any

	guard guard.ConstructorGuard
}

// NewItem creates an Item with validation:
//   - productID and name must be non-empty
//   - quantity must be a positive integer
//   - unitPrice must be a finite non-negative number
//
// The metadata map is copied, so later changes to the caller's map do not
// leak into the item.
func NewItem(productID, name string, quantity int, unitPrice float64, metadata map[string]any) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.metadata = copyMetadata(metadata)
	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier, unique within an order.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the display name of the product.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Metadata returns a copy of the item's metadata, nil when there is none.
func (i Item) Metadata() map[string]any {
	return copyMetadata(i.metadata)
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not a finite number", unitPrice))
	}
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func copyMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	copied := make(map[string]any, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	return copied
}

// mergeMetadata combines two metadata maps, new keys overriding old ones.
// Returns nil when both maps are empty.
func mergeMetadata(old, new map[string]any) map[string]any {
	if len(old) == 0 {
		return copyMetadata(new)
	}
	merged := copyMetadata(old)
	for k, v := range new {
		merged[k] = v
	}
	return merged
}
