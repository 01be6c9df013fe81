package queries_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetSchedulingGroupsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSchedulingGroupsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetSchedulingGroupsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyBoard() {
	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Groups)
	suite.Empty(result.Warnings)

	// The full horizon renders even when nobody offered dates
	suite.Require().Len(result.Buckets, 3)
	today := suite.today()
	for i, bucket := range result.Buckets {
		suite.True(today.AddDays(i).IsEqual(bucket.Day),
			"Bucket %d should cover %s, got %s", i, today.AddDays(i), bucket.Day)
		suite.Empty(bucket.Groups)
	}
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_GroupsByLocationAndLane() {
	// Two orders on the same lane, one sharing only the sender city and one
	// from another city entirely
	first := suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverManchester())
	second := suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverManchester())
	acrossLane := suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverLeeds())
	acrossCity := suite.addSchedulableOrder(suite.senderLondon(), suite.receiverManchester())

	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Warnings)
	suite.Require().Len(result.Groups, 3)

	// Groups come back ordered by location key, then lane
	suite.Equal("birmingham", result.Groups[0].LocationKey)
	suite.Equal("birmingham", result.Groups[1].LocationKey)
	suite.Equal("london", result.Groups[2].LocationKey)

	manchesterLane := suite.senderBirmingham().Address().LaneKey(suite.receiverManchester().Address())
	leedsLane := suite.senderBirmingham().Address().LaneKey(suite.receiverLeeds().Address())

	sharedLane := suite.findGroupByLane(result.Groups, manchesterLane)
	suite.ElementsMatch(
		[]kernel.UUID{first.ID(), second.ID()},
		suite.memberIDs(sharedLane),
	)

	ownLane := suite.findGroupByLane(result.Groups, leedsLane)
	suite.Equal([]kernel.UUID{acrossLane.ID()}, suite.memberIDs(ownLane))

	suite.Equal([]kernel.UUID{acrossCity.ID()}, suite.memberIDs(result.Groups[2]))
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_PickupLegCarriesSenderDates() {
	senderDates := suite.dayOffsets(0, 1)
	seeded := suite.addSchedulableOrderWithDates(
		suite.senderBirmingham(), suite.receiverManchester(),
		senderDates, suite.dayOffsets(2),
	)

	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Groups, 1)
	suite.Require().Len(result.Groups[0].Members, 1)

	member := result.Groups[0].Members[0]
	suite.Equal(seeded.ID(), member.OrderID)
	suite.Require().Len(member.CandidateDates, len(senderDates))
	for i, day := range senderDates {
		suite.True(day.IsEqual(member.CandidateDates[i]))
	}
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_DeliveryLegIncludesBookedCollections() {
	booked := suite.addBookedCollection(suite.senderBirmingham(), suite.receiverManchester())
	open := suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverManchester())

	deliveryQuery, err := queries.NewGetSchedulingGroupsQuery(order.DeliveryLeg, 3)
	suite.Require().NoError(err)

	deliveryBoard, err := suite.handler.Handle(context.Background(), deliveryQuery)

	suite.Require().NoError(err)
	suite.Require().Len(deliveryBoard.Groups, 1)
	suite.Equal("manchester", deliveryBoard.Groups[0].LocationKey)
	suite.ElementsMatch(
		[]kernel.UUID{booked.ID(), open.ID()},
		suite.memberIDs(deliveryBoard.Groups[0]),
	)

	// The booked collection has its pickup date fixed, so the pickup board
	// no longer lists it
	pickupQuery, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	pickupBoard, err := suite.handler.Handle(context.Background(), pickupQuery)

	suite.Require().NoError(err)
	suite.Require().Len(pickupBoard.Groups, 1)
	suite.Equal([]kernel.UUID{open.ID()}, suite.memberIDs(pickupBoard.Groups[0]))
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_BucketsGroupsByMemberAvailability() {
	early := suite.addSchedulableOrderWithDates(
		suite.senderBirmingham(), suite.receiverManchester(),
		suite.dayOffsets(0, 1), suite.dayOffsets(2),
	)
	// The second offer falls on the shared day and on a day beyond the horizon
	late := suite.addSchedulableOrderWithDates(
		suite.senderBirmingham(), suite.receiverManchester(),
		suite.dayOffsets(1, 10), suite.dayOffsets(2),
	)

	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Groups, 1)
	suite.Len(result.Groups[0].Members, 2)

	suite.Require().Len(result.Buckets, 3)

	suite.Require().Len(result.Buckets[0].Groups, 1)
	suite.Equal([]kernel.UUID{early.ID()}, suite.memberIDs(result.Buckets[0].Groups[0]))

	suite.Require().Len(result.Buckets[1].Groups, 1)
	suite.ElementsMatch(
		[]kernel.UUID{early.ID(), late.ID()},
		suite.memberIDs(result.Buckets[1].Groups[0]),
	)

	suite.Empty(result.Buckets[2].Groups)
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_UnresolvableAddressYieldsWarning() {
	grouped := suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverManchester())
	ungroupable := suite.addSchedulableOrder(suite.senderWithoutCity(), suite.receiverManchester())

	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)

	suite.Require().Len(result.Groups, 1)
	suite.Equal([]kernel.UUID{grouped.ID()}, suite.memberIDs(result.Groups[0]))

	suite.Require().Len(result.Warnings, 1)
	suite.Equal(ungroupable.ID(), result.Warnings[0].OrderID)
	suite.Contains(result.Warnings[0].Cause, "no city")
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_HorizonBeyondLimit_ReturnsError() {
	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 61)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetSchedulingGroupsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Empty(result.Groups)
	suite.Contains(err.Error(), "must be created via NewGetSchedulingGroupsQuery constructor")
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	// Create many orders to ensure context cancellation happens during processing
	for range 50 {
		suite.addSchedulableOrder(suite.senderBirmingham(), suite.receiverManchester())
	}

	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 3)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

// addSchedulableOrder persists an order awaiting dates with default
// availability on the current day.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) addSchedulableOrder(
	sender order.Party, receiver order.Party,
) *order.Order {
	return suite.addSchedulableOrderWithDates(sender, receiver, suite.dayOffsets(0), suite.dayOffsets(1))
}

// addSchedulableOrderWithDates persists an order awaiting dates with the
// given candidate date sets.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) addSchedulableOrderWithDates(
	sender order.Party,
	receiver order.Party,
	senderDates []kernel.Day,
	receiverDates []kernel.Day,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		sender,
		receiver,
		order.ScheduledDatesPending,
		senderDates,
		receiverDates,
		nil, nil,
		"", "", "", "",
		1,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)
	return testOrder
}

// addBookedCollection persists an order whose pickup is fixed while the
// delivery leg stays open.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) addBookedCollection(
	sender order.Party, receiver order.Party,
) *order.Order {
	pickupAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		sender,
		receiver,
		order.CollectionScheduled,
		suite.dayOffsets(0),
		suite.dayOffsets(1),
		&pickupAt, nil,
		"morning", "", "", "",
		2,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)
	return testOrder
}

// today returns the day the handler anchors its horizon on.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) today() kernel.Day {
	day, err := kernel.NewDay(time.Now())
	suite.Require().NoError(err)
	return day
}

// dayOffsets builds candidate days relative to the current day.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) dayOffsets(offsets ...int) []kernel.Day {
	today := suite.today()
	days := make([]kernel.Day, 0, len(offsets))
	for _, offset := range offsets {
		days = append(days, today.AddDays(offset))
	}
	return days
}

// memberIDs extracts the member order identifiers of a group.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) memberIDs(group queries.SchedulingGroupResponse) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(group.Members))
	for _, member := range group.Members {
		ids = append(ids, member.OrderID)
	}
	return ids
}

// findGroupByLane locates the group carrying the given lane key.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) findGroupByLane(
	groups []queries.SchedulingGroupResponse, lane string,
) queries.SchedulingGroupResponse {
	for _, group := range groups {
		if group.Lane == lane {
			return group
		}
	}
	suite.Require().Failf("group not found", "no group with lane %q", lane)
	return queries.SchedulingGroupResponse{}
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) senderBirmingham() order.Party {
	address, err := kernel.NewAddress("12 Harborne Road", "Birmingham", "B15 3AA")
	suite.Require().NoError(err)
	party, err := order.NewParty("Ada Brown", "+44 121 555 0199", "", address)
	suite.Require().NoError(err)
	return party
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) senderLondon() order.Party {
	address, err := kernel.NewAddress("9 Cheapside", "London", "EC2V 6AA")
	suite.Require().NoError(err)
	party, err := order.NewParty("Dee Fox", "+44 20 7946 0355", "", address)
	suite.Require().NoError(err)
	return party
}

// senderWithoutCity builds a party whose address cannot anchor a group.
func (suite *GetSchedulingGroupsQueryHandlerTestSuite) senderWithoutCity() order.Party {
	address, err := kernel.NewAddress("5 Foregate Street", "", "")
	suite.Require().NoError(err)
	party, err := order.NewParty("Eve Gray", "+44 1905 555 0123", "", address)
	suite.Require().NoError(err)
	return party
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) receiverManchester() order.Party {
	address, err := kernel.NewAddress("3 Deansgate", "Manchester", "M3 2AY")
	suite.Require().NoError(err)
	party, err := order.NewParty("Bo Clarke", "+44 161 555 0142", "", address)
	suite.Require().NoError(err)
	return party
}

func (suite *GetSchedulingGroupsQueryHandlerTestSuite) receiverLeeds() order.Party {
	address, err := kernel.NewAddress("7 Briggate", "Leeds", "LS1 6HD")
	suite.Require().NoError(err)
	party, err := order.NewParty("Cal Young", "+44 113 555 0177", "", address)
	suite.Require().NoError(err)
	return party
}

func TestGetSchedulingGroupsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSchedulingGroupsQueryHandlerTestSuite))
}
