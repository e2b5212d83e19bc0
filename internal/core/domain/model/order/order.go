package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions. This
// ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// metadataCancellationReason is the metadata key recording a cancel reason.
const metadataCancellationReason = "cancellationReason"

// Order is the aggregate root for a customer order. It owns its items,
// status, and timestamps, and every mutation goes through a method that
// enforces the aggregate invariants:
//
//   - an order always has at least one item
//   - productId is unique across items; adding a duplicate merges quantities
//     and takes the new unit price
//   - status transitions are monotonic forward, cancellation excepted, and
//     cancellation is impossible once shipped
//   - updatedAt is bumped on every successful mutation; failed operations
//     leave the aggregate unchanged
//
// The total is recomputed from the items on every read, never cached.
type Order struct {
	id         kernel.UUID
	customerID string
	items      []Item
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	metadata   map[string]any
	version    int64

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This and
// RestoreOrder are the only construction paths; there is no public mutable
// constructor.
//
// The id must be valid, customerID non-empty, and items a non-empty list of
// constructed Items with unique product ids. Timestamps are set to the
// current time.
func NewOrder(id kernel.UUID, customerID string, items []Item, metadata map[string]any) (*Order, error) {
	now := time.Now().UTC()
	return RestoreOrder(id, customerID, items, Pending, now, now, metadata)
}

// RestoreOrder reconstructs an Order from persisted state, running the same
// validations as NewOrder plus the status check. Repositories use it to
// rehydrate aggregates; callers must not pass state that never went through
// the aggregate's own operations.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	metadata map[string]any,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		metadata:      copyMetadata(metadata),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order's items in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp. It never changes after
// construction.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Metadata returns a copy of the order's metadata, nil when there is none.
func (o *Order) Metadata() map[string]any {
	return copyMetadata(o.metadata)
}

// Version returns the persistence version loaded with the aggregate.
// Repositories compare-and-swap on it when saving, so a concurrent write to
// the same order since the load fails with a StaleObjectError instead of
// silently overwriting.
func (o *Order) Version() int64 {
	return o.version
}

// Total returns the sum of all item line totals, recomputed on every call.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.LineTotal()
	}
	return total
}

// AddItem adds an item to the order. If an item with the same productId is
// already present, the two are merged: quantities are summed, the new unit
// price wins, and metadata maps are merged with new keys overriding old
// ones. Otherwise the item is appended.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	idx := o.indexOf(item.ProductID())
	if idx < 0 {
		o.items = append(o.items, item)
		o.touch()
		return nil
	}

	existing := o.items[idx]
	merged, err := NewItem(
		existing.ProductID(),
		existing.Name(),
		existing.Quantity()+item.Quantity(),
		item.UnitPrice(),
		mergeMetadata(existing.metadata, item.metadata),
	)
	if err != nil {
		return err
	}

	o.items[idx] = merged
	o.touch()
	return nil
}

// RemoveItem removes the item with the given productId. Fails if the
// product is not in the order, or if removal would leave the order empty;
// in both cases the order is left unchanged.
func (o *Order) RemoveItem(productID string) error {
	idx := o.indexOf(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("product", productID)
	}
	if len(o.items) == 1 {
		return errs.NewInvariantViolationError("order must have at least one item")
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.touch()
	return nil
}

// UpdateItemQuantity replaces the quantity of the item with the given
// productId. The quantity must be a positive integer.
func (o *Order) UpdateItemQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be a positive integer"))
	}

	idx := o.indexOf(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("product", productID)
	}

	existing := o.items[idx]
	updated, err := NewItem(
		existing.ProductID(),
		existing.Name(),
		quantity,
		existing.UnitPrice(),
		existing.metadata,
	)
	if err != nil {
		return err
	}

	o.items[idx] = updated
	o.touch()
	return nil
}

// Confirm moves the order from Pending to Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkPaid moves the order to Paid, legal from Pending or Confirmed.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkShipped moves the order from Paid to Shipped.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.MarkShipped()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel cancels the order unless it has shipped. A non-empty reason is
// recorded in the order metadata under "cancellationReason" without
// overwriting other metadata keys.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if reason != "" {
		if o.metadata == nil {
			o.metadata = make(map[string]any, 1)
		}
		o.metadata[metadataCancellationReason] = reason
	}
	o.touch()
	return nil
}

func (o *Order) indexOf(productID string) int {
	for i, item := range o.items {
		if item.ProductID() == productID {
			return i
		}
	}
	return -1
}

// touch bumps updatedAt. The wall clock is monotonic within a process, so
// updatedAt never decreases across mutations.
func (o *Order) touch() {
	now := time.Now().UTC()
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]struct{}, len(items))
	copied := make([]Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("duplicate productId "+item.ProductID()))
		}
		seen[item.ProductID()] = struct{}{}
		copied = append(copied, item)
	}

	o.items = copied
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
