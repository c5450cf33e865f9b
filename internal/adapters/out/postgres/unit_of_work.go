// Package postgres implements the unit of work over a GORM connection.
//
// A unit of work spans one business operation: the workflow façade opens it,
// runs order and staff repository calls inside a single database transaction,
// and commits or rolls back as a whole. This is what keeps the two sides of a
// staff assignment (the order's staff field and the member's assignment row)
// from ever being persisted half-done.
//
// Typical handler sequence:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.StaffRepository().Update(ctx, member); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Every aggregate written through the unit of work is also tracked, so a
// post-commit step (event publishing, an outbox writer) can see what changed.
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is one aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates unit of work instances that share one GORM
// connection. Each Create call returns a fresh instance, so concurrent
// operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new unit of work with empty transaction state and an
// empty tracked-aggregate list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is one transactional scope over the order and staff
// repositories. Repositories obtained from it run inside the open transaction
// when there is one, and directly on the connection otherwise, which the
// integration tests rely on when seeding data outside a transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the database transaction. Calling Begin again while a
// transaction is open is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit makes all writes of the current transaction permanent and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all writes of the current transaction and closes it.
// Handlers defer it unconditionally; after a successful Commit the call
// returns gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StaffRepository returns the staff repository bound to this scope.
// Members written through it are tracked on this unit of work.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return staffrepo.NewGormStaffRepository(db, uow)
}

// OrderRepository returns the order repository bound to this scope.
// Orders written through it are tracked on this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate records an aggregate written during this unit of work.
// Called by the repositories on every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
