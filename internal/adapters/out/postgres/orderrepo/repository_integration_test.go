package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	// Create valid order
	testOrder := suite.createTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	ctx := context.Background()

	// Zero-value order fails aggregate validation before any database work
	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "constructor")

	// Verify no order was persisted
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order with availability confirmed on both sides
	id := kernel.NewUUID()
	originalOrder := suite.restoreTestOrder(
		id,
		order.ScheduledDatesPending,
		suite.days("2025-03-10", "2025-03-12"),
		suite.days("2025-03-11", "2025-03-13"),
		nil,
		nil,
		"", "", "", "",
		1,
	)

	// Set expectations for Add operation
	suite.tracker.On("TrackAggregate", id, originalOrder).Once()

	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	// Retrieve order
	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	// Verify order details
	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(order.ScheduledDatesPending, retrievedOrder.Status())
	suite.Equal("Ada Brown", retrievedOrder.Sender().Name())
	suite.Equal("12 Harborne Road", retrievedOrder.Sender().Address().Street())
	suite.Equal("Birmingham", retrievedOrder.Sender().Address().City())
	suite.Equal("Bo Clarke", retrievedOrder.Receiver().Name())
	suite.Equal("Manchester", retrievedOrder.Receiver().Address().City())
	suite.Equal(suite.days("2025-03-10", "2025-03-12"), retrievedOrder.SenderCandidateDates())
	suite.Equal(suite.days("2025-03-11", "2025-03-13"), retrievedOrder.ReceiverCandidateDates())
	suite.Nil(retrievedOrder.ScheduledPickupAt())
	suite.Nil(retrievedOrder.ScheduledDeliveryAt())
	suite.Equal(1, retrievedOrder.Version())

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripPreservesSchedule() {
	ctx := context.Background()

	// Order with a booked collection: scheduled time, timeslot and job reference
	id := kernel.NewUUID()
	pickupAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	originalOrder := suite.restoreTestOrder(
		id,
		order.CollectionScheduled,
		suite.days("2025-03-10"),
		suite.days("2025-03-12"),
		&pickupAt,
		nil,
		"morning", "", "job-17", "",
		3,
	)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	// Retrieve and verify the schedule survived the round trip
	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Require().NotNil(retrievedOrder.ScheduledPickupAt())
	suite.True(pickupAt.Equal(*retrievedOrder.ScheduledPickupAt()))
	suite.Nil(retrievedOrder.ScheduledDeliveryAt())
	suite.Equal("morning", retrievedOrder.PickupTimeslot())
	suite.Equal("job-17", retrievedOrder.PickupJobRef())
	suite.Equal("", retrievedOrder.DeliveryJobRef())
	suite.Equal(3, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent order
	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChangesAndBumpsVersion() {
	ctx := context.Background()

	// Create an order ready for scheduling
	id := kernel.NewUUID()
	testOrder := suite.restoreTestOrder(
		id,
		order.ScheduledDatesPending,
		suite.days("2025-03-10"),
		suite.days("2025-03-12"),
		nil,
		nil,
		"", "", "", "",
		1,
	)

	suite.tracker.On("TrackAggregate", id, testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Book the collection and persist the change
	pickupAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(testOrder.SchedulePickup(pickupAt, "morning"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// Retrieve and verify the update and the version bump
	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.CollectionScheduled, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.ScheduledPickupAt())
	suite.True(pickupAt.Equal(*retrievedOrder.ScheduledPickupAt()))
	suite.Equal("morning", retrievedOrder.PickupTimeslot())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearedScheduleReachesDatabase() {
	ctx := context.Background()

	// Order with a booked collection
	id := kernel.NewUUID()
	pickupAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testOrder := suite.restoreTestOrder(
		id,
		order.CollectionScheduled,
		suite.days("2025-03-10"),
		suite.days("2025-03-12"),
		&pickupAt,
		nil,
		"morning", "", "job-17", "",
		1,
	)

	suite.tracker.On("TrackAggregate", id, testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Reset the schedule and persist: the cleared fields must reach the database
	suite.Require().NoError(testOrder.ResetSchedule())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.ScheduledDatesPending, retrievedOrder.Status())
	suite.Nil(retrievedOrder.ScheduledPickupAt())
	suite.Equal("", retrievedOrder.PickupTimeslot())
	suite.Equal("", retrievedOrder.PickupJobRef())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	// Persist an order at version 1
	id := kernel.NewUUID()
	testOrder := suite.restoreTestOrder(
		id,
		order.ScheduledDatesPending,
		suite.days("2025-03-10"),
		suite.days("2025-03-12"),
		nil,
		nil,
		"", "", "", "",
		1,
	)
	suite.tracker.On("TrackAggregate", id, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First writer wins: the row moves to version 2
	firstWriter, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(firstWriter.SchedulePickup(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), ""))
	suite.Require().NoError(suite.repository.Update(ctx, firstWriter))

	// Second writer still holds version 1 and loses the race
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)

	// The winning write is untouched
	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.CollectionScheduled, retrievedOrder.Status())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllSchedulable_ReturnsSchedulingPool() {
	ctx := context.Background()

	// Orders across the lifecycle; only the scheduling pool should come back
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(7)

	suite.addOrderInStatus(ctx, order.Created)
	suite.addOrderInStatus(ctx, order.SenderAvailabilityPending)
	poolSAC := suite.addOrderInStatus(ctx, order.SenderAvailabilityConfirmed)
	poolPA := suite.addOrderInStatus(ctx, order.PendingApproval)
	poolSDP := suite.addOrderInStatus(ctx, order.ScheduledDatesPending)
	poolCS := suite.addOrderInStatus(ctx, order.CollectionScheduled)
	suite.addOrderInStatus(ctx, order.Delivered)

	schedulable, err := suite.repository.GetAllSchedulable(ctx)
	suite.Require().NoError(err)

	suite.Len(schedulable, 4)
	retrievedIDs := make([]kernel.UUID, 0, len(schedulable))
	for _, o := range schedulable {
		retrievedIDs = append(retrievedIDs, o.ID())
	}
	suite.Contains(retrievedIDs, poolSAC.ID())
	suite.Contains(retrievedIDs, poolPA.ID())
	suite.Contains(retrievedIDs, poolSDP.ID())
	suite.Contains(retrievedIDs, poolCS.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllSchedulable_NoPoolOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.addOrderInStatus(ctx, order.Created)
	suite.addOrderInStatus(ctx, order.Delivered)

	schedulable, err := suite.repository.GetAllSchedulable(ctx)
	suite.Require().NoError(err)
	suite.Empty(schedulable)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllStalePending_ReturnsOnlyStalePendingOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	// A pending order whose last touch is old, a fresh pending order and a
	// stale order outside the pending statuses
	staleOrder := suite.addOrderInStatus(ctx, order.SenderAvailabilityPending)
	suite.addOrderInStatus(ctx, order.ReceiverAvailabilityPending)
	staleScheduled := suite.addOrderInStatus(ctx, order.ScheduledDatesPending)

	backdated := time.Now().Add(-72 * time.Hour)
	suite.backdate(staleOrder.ID(), backdated)
	suite.backdate(staleScheduled.ID(), backdated)

	stale, err := suite.repository.GetAllStalePending(ctx, time.Now().Add(-48*time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(stale, 1)
	suite.Equal(staleOrder.ID(), stale[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// backdate rewrites an order's last-update timestamp directly in the database.
func (suite *OrderRepositoryIntegrationTestSuite) backdate(id kernel.UUID, to time.Time) {
	err := suite.db.Exec("UPDATE orders SET updated_at = ? WHERE id = ?", to, id.Bytes()).Error
	suite.Require().NoError(err)
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	id := kernel.NewUUID()
	testOrder, err := order.NewOrder(id, suite.sender(), suite.receiver())
	suite.Require().NoError(err)
	return testOrder
}

// restoreTestOrder rebuilds an order in an arbitrary lifecycle state.
func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(
	id kernel.UUID,
	status order.Status,
	senderDates []kernel.Day,
	receiverDates []kernel.Day,
	pickupAt *time.Time,
	deliveryAt *time.Time,
	pickupTimeslot string,
	deliveryTimeslot string,
	pickupJobRef string,
	deliveryJobRef string,
	version int,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		id,
		suite.sender(),
		suite.receiver(),
		status,
		senderDates,
		receiverDates,
		pickupAt,
		deliveryAt,
		pickupTimeslot,
		deliveryTimeslot,
		pickupJobRef,
		deliveryJobRef,
		version,
	)
	suite.Require().NoError(err)
	return testOrder
}

// addOrderInStatus persists a minimal valid order in the given status.
func (suite *OrderRepositoryIntegrationTestSuite) addOrderInStatus(
	ctx context.Context, status order.Status,
) *order.Order {
	var pickupAt *time.Time
	if status == order.CollectionScheduled || status == order.Delivered {
		at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		pickupAt = &at
	}

	testOrder := suite.restoreTestOrder(
		kernel.NewUUID(),
		status,
		suite.days("2025-03-10"),
		suite.days("2025-03-12"),
		pickupAt,
		nil,
		"", "", "", "",
		1,
	)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// sender builds the default sending party.
func (suite *OrderRepositoryIntegrationTestSuite) sender() order.Party {
	address, err := kernel.NewAddress("12 Harborne Road", "Birmingham", "B15 3AA")
	suite.Require().NoError(err)
	party, err := order.NewParty("Ada Brown", "+44 121 555 0199", "", address)
	suite.Require().NoError(err)
	return party
}

// receiver builds the default receiving party.
func (suite *OrderRepositoryIntegrationTestSuite) receiver() order.Party {
	address, err := kernel.NewAddress("3 Deansgate", "Manchester", "M3 2AY")
	suite.Require().NoError(err)
	party, err := order.NewParty("Bo Clarke", "+44 161 555 0142", "", address)
	suite.Require().NoError(err)
	return party
}

// days parses day values for fixtures.
func (suite *OrderRepositoryIntegrationTestSuite) days(values ...string) []kernel.Day {
	days := make([]kernel.Day, 0, len(values))
	for _, value := range values {
		day, err := kernel.ParseDay(value)
		suite.Require().NoError(err)
		days = append(days, day)
	}
	return days
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
