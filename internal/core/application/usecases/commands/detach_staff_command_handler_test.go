package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDetachStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrder(t)
	member := testStaffMember(t, "Alice Kim")
	require.NoError(t, testOrder.AssignStaff(member.ID(), time.Now()))
	require.NoError(t, member.AssignOrder(testOrder.ID()))

	cmd, err := commands.NewDetachStaffCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		staffRepo.On("GetByOrder", ctx, testOrder.ID()).Return(member, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		staffRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDetachStaffCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, testOrder.Staff())
	assert.False(t, member.IsAssignedTo(testOrder.ID()))
	orderRepo.AssertExpectations(t)
	staffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDetachStaffCommandHandler_Handle_AlreadyUnassigned(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrder(t)
	cmd, err := commands.NewDetachStaffCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDetachStaffCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDetachStaffCommandHandler_Handle_HolderRecordMissing(t *testing.T) {
	ctx := t.Context()
	testOrder := testOrder(t)
	require.NoError(t, testOrder.AssignStaff(kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewDetachStaffCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		staffRepo.On("GetByOrder", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDetachStaffCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, testOrder.Staff())
}
