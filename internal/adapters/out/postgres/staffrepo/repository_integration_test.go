package staffrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// StaffRepositoryIntegrationTestSuite provides integration tests for StaffRepository
// using PostgreSQL containers to verify database persistence behavior.
type StaffRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *staffrepo.GormStaffRepository
	tracker    *MockAggregateTracker
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&staffrepo.StaffMemberDTO{}, &staffrepo.AssignmentDTO{}))
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE staff_members, staff_assignments").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = staffrepo.NewGormStaffRepository(suite.db, suite.tracker)
}

func (suite *StaffRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StaffRepositoryIntegrationTestSuite) TestAdd_ValidStaffMember_Success() {
	ctx := context.Background()

	member := suite.createTestStaffMember("Marta Vidal")
	suite.tracker.On("TrackAggregate", member.ID(), member).Once()

	err := suite.repository.Add(ctx, member)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&staffrepo.StaffMemberDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGet_ExistingStaffMember_RestoresAggregate() {
	ctx := context.Background()

	member := suite.createTestStaffMember("Marta Vidal")
	orderID := kernel.NewUUID()
	suite.Require().NoError(member.AssignOrder(orderID))

	suite.tracker.On("TrackAggregate", member.ID(), member).Once()
	suite.Require().NoError(suite.repository.Add(ctx, member))

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.Equal(member.ID(), retrieved.ID())
	suite.Equal("Marta Vidal", retrieved.Name())
	suite.Equal(staff.RoleTechnician, retrieved.Role())
	suite.True(retrieved.IsAssignedTo(orderID))
	suite.Equal(1, retrieved.AssignedCount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGet_NonExistentStaffMember_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_RewritesAssignmentSet() {
	ctx := context.Background()

	member := suite.createTestStaffMember("Marta Vidal")
	firstOrder := kernel.NewUUID()
	suite.Require().NoError(member.AssignOrder(firstOrder))

	suite.tracker.On("TrackAggregate", member.ID(), member).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, member))

	// Swap the held order and persist
	secondOrder := kernel.NewUUID()
	member.UnassignOrder(firstOrder)
	suite.Require().NoError(member.AssignOrder(secondOrder))
	suite.Require().NoError(suite.repository.Update(ctx, member))

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAssignedTo(firstOrder))
	suite.True(retrieved.IsAssignedTo(secondOrder))
	suite.Equal(1, retrieved.AssignedCount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_PersistedMember_BumpsVersion() {
	ctx := context.Background()

	member := suite.createTestStaffMember("Marta Vidal")
	suite.tracker.On("TrackAggregate", member.ID(), member).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, member))

	suite.Require().NoError(member.AssignOrder(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, member))

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.Equal(member.Version()+1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModification() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	member := suite.createTestStaffMember("Marta Vidal")
	suite.Require().NoError(suite.repository.Add(ctx, member))

	// Two loads of the same row, each receiving a different assignment
	firstCopy, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.AssignOrder(kernel.NewUUID()))
	suite.Require().NoError(secondCopy.AssignOrder(kernel.NewUUID()))

	// First writer wins; the stale copy must not overwrite its assignment
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.Equal(firstCopy.AssignedOrderIDs(), retrieved.AssignedOrderIDs())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_NonExistentStaffMember_ReturnsError() {
	ctx := context.Background()

	member := suite.createTestStaffMember("Ghost Worker")

	err := suite.repository.Update(ctx, member)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsHolder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	holder := suite.createTestStaffMember("Marta Vidal")
	orderID := kernel.NewUUID()
	suite.Require().NoError(holder.AssignOrder(orderID))
	suite.Require().NoError(suite.repository.Add(ctx, holder))

	idleMember := suite.createTestStaffMember("Pavel Novak")
	suite.Require().NoError(suite.repository.Add(ctx, idleMember))

	retrieved, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(holder.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetByOrder_UnassignedOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetAll_ReturnsMembersOrderedByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	for _, name := range []string{"Pavel Novak", "Alice Johnson", "Marta Vidal"} {
		member := suite.createTestStaffMember(name)
		suite.Require().NoError(suite.repository.Add(ctx, member))
	}

	members, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(members, 3)
	suite.Equal("Alice Johnson", members[0].Name())
	suite.Equal("Marta Vidal", members[1].Name())
	suite.Equal("Pavel Novak", members[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestStaffMember creates a valid technician for testing purposes.
func (suite *StaffRepositoryIntegrationTestSuite) createTestStaffMember(name string) *staff.StaffMember {
	member, err := staff.NewStaffMember(kernel.NewUUID(), name, staff.RoleTechnician)
	suite.Require().NoError(err)
	return member
}

func TestStaffRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StaffRepositoryIntegrationTestSuite))
}
