package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrOrderIDNotAssigned is returned when Update is called with an aggregate
// that never went through Add.
var ErrOrderIDNotAssigned = errors.New("order has no assigned identifier")

// GormOrderRepository implements OrderRepository using GORM.
// Write operations insert the matching history row in the same database
// handle they were given, so a transactional handle keeps the order and its
// timeline atomic.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given database handle, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its initial history entry, then assigns the
// database-generated identifier to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	return r.appendHistory(ctx, aggregate)
}

// Update saves the order's current status and appends a history entry.
// Returns an ObjectNotFoundError when the order row no longer exists.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsAssigned() {
		return ErrOrderIDNotAssigned
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order id", aggregate.ID().Int64())
	}

	return r.appendHistory(ctx, aggregate)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetHistory retrieves the order's status timeline, oldest entry first.
// The slice is empty when the order has no rows.
func (r *GormOrderRepository) GetHistory(ctx context.Context, id kernel.OrderID) ([]order.HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Order("change_date, id").
		Find(&dtos, "order_id = ?", id.Int64()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := historyToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// appendHistory inserts one timeline row for the aggregate's current status.
// The change date comes from the service clock at append time.
func (r *GormOrderRepository) appendHistory(ctx context.Context, aggregate *order.Order) error {
	dto := HistoryDTO{
		OrderID:    aggregate.ID().Int64(),
		Status:     aggregate.Status().String(),
		ChangeDate: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
