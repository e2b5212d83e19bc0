// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Items live in their own table; the association is loaded
// eagerly and kept in insertion order via Position.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"index"`
	Status     string    `gorm:"index"`
	Metadata   []byte    `gorm:"type:jsonb"`
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The composite primary key mirrors the
// aggregate invariant that a product appears at most once per order.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"primaryKey"`
	Position  int
	Name      string
	Quantity  int
	UnitPrice float64
	Metadata  []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	snapshot := aggregate.Snapshot()

	metadata, err := marshalMetadata(snapshot.Metadata)
	if err != nil {
		return OrderDTO{}, err
	}

	items := make([]ItemDTO, len(snapshot.Items))
	for i, item := range snapshot.Items {
		itemMetadata, itemErr := marshalMetadata(item.Metadata)
		if itemErr != nil {
			return OrderDTO{}, itemErr
		}

		items[i] = ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID,
			Position:  i,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Metadata:  itemMetadata,
		}
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: snapshot.CustomerID,
		Status:     snapshot.Status,
		Metadata:   metadata,
		Version:    snapshot.Version,
		CreatedAt:  snapshot.CreatedAt,
		UpdatedAt:  snapshot.UpdatedAt,
		Items:      items,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	metadata, err := unmarshalMetadata(dto.Metadata)
	if err != nil {
		return nil, err
	}

	items := make([]order.ItemSnapshot, len(dto.Items))
	for i, item := range dto.Items {
		itemMetadata, itemErr := unmarshalMetadata(item.Metadata)
		if itemErr != nil {
			return nil, itemErr
		}

		items[i] = order.ItemSnapshot{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Metadata:  itemMetadata,
		}
	}

	return order.FromSnapshot(order.Snapshot{
		ID:         id.String(),
		CustomerID: dto.CustomerID,
		Items:      items,
		Status:     dto.Status,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
		Metadata:   metadata,
		Version:    dto.Version,
	})
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	return json.Marshal(metadata)
}

func unmarshalMetadata(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var metadata map[string]any
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, err
	}

	return metadata, nil
}
