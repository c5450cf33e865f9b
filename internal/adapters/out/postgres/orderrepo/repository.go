package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its items and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database with optimistic locking.
// The write succeeds only when the stored version still matches the version
// the aggregate was loaded with; the stored version is bumped on success.
// Returns errs.ErrConcurrentModification (wrapped) when another transaction
// won the race, and gorm.ErrRecordNotFound when the order does not exist.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	tx := r.db.WithContext(ctx)

	result := tx.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("status", "staff_id", "total_amount_minor", "version", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	if err := r.replaceChildren(tx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren rewrites the item and history rows to match the aggregate.
// Runs inside the caller's transaction, after the version check has passed.
func (r *GormOrderRepository) replaceChildren(tx *gorm.DB, dto OrderDTO) error {
	if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := tx.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("order_id = ?", dto.ID).Delete(&StatusEventDTO{}).Error; err != nil {
		return err
	}
	if len(dto.History) > 0 {
		if err := tx.Create(&dto.History).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with its items and status history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstUnassigned retrieves the oldest accepted order without staff.
// Orders still in the placed status are not assignment candidates; they
// become eligible once the facility accepts them. Terminal orders never are.
func (r *GormOrderRepository) GetFirstUnassigned(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History").
		Where(
			"staff_id IS NULL AND status >= ? AND status NOT IN (?, ?)",
			order.OrderAccepted, order.Completed, order.Cancelled,
		).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first unassigned")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUncompleted retrieves all orders that have not reached a terminal status.
func (r *GormOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History").
		Where("status NOT IN (?, ?)", order.Completed, order.Cancelled).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
