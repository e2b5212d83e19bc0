package orderrepo

import (
	"context"
	"errors"
	"sort"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database. Fails with a ConflictError when an
// order with the same id already exists.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("order", aggregate.ID().String())
		}
		return err
	}

	return nil
}

// Update saves an existing order to the database. The write is a
// compare-and-swap on the version column, so a concurrent update since the
// aggregate was loaded fails with a StaleObjectError. Item rows are
// replaced wholesale: merges, removals, and reordering all reduce to a
// delete-and-reinsert within the caller's transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	items := dto.Items
	dto.Items = nil
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("CustomerID", "Status", "Metadata", "Version", "CreatedAt", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewStaleObjectError("order", aggregate.ID().String())
	}

	if err = r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// Get retrieves an order by id, items included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	return toDomain(dto)
}

// Delete removes an order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
