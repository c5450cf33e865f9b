package staffrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff member to the database.
func (r *GormStaffRepository) Add(ctx context.Context, member *staff.StaffMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

// Update saves an existing staff member to the database with optimistic
// locking. The write succeeds only when the stored version still matches the
// version the aggregate was loaded with; the stored version is bumped on
// success and the assignment rows are rewritten to match the aggregate's
// current set. Returns errs.ErrConcurrentModification (wrapped) when another
// transaction won the race, and gorm.ErrRecordNotFound when the member does
// not exist.
func (r *GormStaffRepository) Update(ctx context.Context, member *staff.StaffMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	dto.Version = member.Version() + 1

	tx := r.db.WithContext(ctx)

	result := tx.Model(&StaffMemberDTO{}).
		Where("id = ? AND version = ?", dto.ID, member.Version()).
		Select("name", "role", "version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&StaffMemberDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return errs.NewConcurrentModificationError("staff member", member.ID().String())
	}

	if err := tx.Where("staff_member_id = ?", dto.ID).Delete(&AssignmentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Assignments) > 0 {
		if err := tx.Create(&dto.Assignments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

// Get retrieves a staff member by ID with their assignment set.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffMemberDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the staff member currently holding the given order.
func (r *GormStaffRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*staff.StaffMember, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var assignment AssignmentDTO
	err := r.db.WithContext(ctx).First(&assignment, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff member", "holder of order "+orderID.String())
		}
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(assignment.StaffMemberID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, memberID)
}

// GetAll retrieves every staff member with their assignment sets, ordered by name.
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]*staff.StaffMember, error) {
	var dtos []StaffMemberDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	members := make([]*staff.StaffMember, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
