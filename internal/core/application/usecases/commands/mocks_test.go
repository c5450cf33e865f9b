package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstUnassigned(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member *staff.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, member *staff.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*staff.StaffMember, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) GetAll(ctx context.Context) ([]*staff.StaffMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.StaffMember), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

// Shared fixtures.

func testPricing() services.PricingPolicy {
	return services.PricingPolicy{
		TaxRate:  decimal.NewFromFloat(0.10),
		Discount: kernel.ZeroMoney(),
	}
}

func testItemInputs() []commands.OrderItemInput {
	return []commands.OrderItemInput{
		{Name: "Shirt", Quantity: 3, UnitPriceMinor: 2500},
		{Name: "Jeans", Quantity: 1, UnitPriceMinor: 3000},
	}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomerInfo("John Doe", "john@example.com", "+15550100", "12 Main St")
	require.NoError(t, err)

	price25, err := kernel.NewMoney(25, 0)
	require.NoError(t, err)
	price30, err := kernel.NewMoney(30, 0)
	require.NoError(t, err)

	shirt, err := order.NewItem("Shirt", 3, price25)
	require.NoError(t, err)
	jeans, err := order.NewItem("Jeans", 1, price30)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", customer, []*order.Item{shirt, jeans}, time.Now())
	require.NoError(t, err)
	return o
}

func testOrderAt(t *testing.T, target order.Status) *order.Order {
	t.Helper()

	o := testOrder(t)
	for o.Status() != target {
		next := o.Status() + 1
		require.NoError(t, o.Advance(next, "", time.Now()))
	}
	return o
}

func testStaffMember(t *testing.T, name string) *staff.StaffMember {
	t.Helper()

	member, err := staff.NewStaffMember(kernel.NewUUID(), name, staff.RoleTechnician)
	require.NoError(t, err)
	return member
}
