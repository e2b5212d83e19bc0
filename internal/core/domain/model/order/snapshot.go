package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// ItemSnapshot is the primitive representation of an order line, used in
// event payloads, persistence mapping, and read responses.
type ItemSnapshot struct {
	ProductID string         `json:"productId"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	UnitPrice float64        `json:"unitPrice"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Snapshot is the primitive representation of an order aggregate. Total is
// computed at snapshot time and carried for consumers that cannot recompute
// it; FromSnapshot ignores it. Version is the persistence version used by
// repositories for compare-and-swap saves.
type Snapshot struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customerId"`
	Items      []ItemSnapshot `json:"items"`
	Status     string         `json:"status"`
	Total      float64        `json:"total"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Version    int64          `json:"version"`
}

// FromSnapshot reconstructs an Order aggregate from its primitive
// representation, re-running all construction validations. Persistence
// adapters use it to rehydrate aggregates from storage.
func FromSnapshot(s Snapshot) (*Order, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}

	status, err := StatusFromString(s.Status)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(s.Items))
	for _, is := range s.Items {
		item, itemErr := NewItem(is.ProductID, is.Name, is.Quantity, is.UnitPrice, is.Metadata)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	restored, err := RestoreOrder(id, s.CustomerID, items, status, s.CreatedAt, s.UpdatedAt, s.Metadata)
	if err != nil {
		return nil, err
	}

	restored.version = s.Version
	return restored, nil
}

// Snapshot returns the primitive representation of the order.
func (o *Order) Snapshot() Snapshot {
	items := make([]ItemSnapshot, len(o.items))
	for i, item := range o.items {
		items[i] = ItemSnapshot{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Metadata:  item.Metadata(),
		}
	}

	return Snapshot{
		ID:         o.id.String(),
		CustomerID: o.customerID,
		Items:      items,
		Status:     o.status.String(),
		Total:      o.Total(),
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
		Metadata:   o.Metadata(),
		Version:    o.version,
	}
}
