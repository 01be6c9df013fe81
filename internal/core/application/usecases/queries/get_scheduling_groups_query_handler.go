package queries

import (
	"context"
	"database/sql"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetSchedulingGroupsQueryHandler computes the planning board for one leg.
// Loads the scheduling pool from the database, restores the domain orders,
// and runs the grouping engine over them: groups by location and lane, then
// buckets across the horizon by member availability.
//
// Example:
//
//	handler := NewGetSchedulingGroupsQueryHandler(db)
//	query, err := NewGetSchedulingGroupsQuery(order.DeliveryLeg, 5)
//	if err != nil {
//	    return err
//	}
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to compute planning board: %v", err)
//	    return err
//	}
type GetSchedulingGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetSchedulingGroupsQueryHandler creates a handler for planning board queries.
// Requires a GORM database connection for query execution.
func NewGetSchedulingGroupsQueryHandler(db *gorm.DB) GetSchedulingGroupsQueryHandler {
	return GetSchedulingGroupsQueryHandler{db: db}
}

// Handle executes the query and computes the planning board.
// The horizon starts on the current day. Orders outside the leg's pool are
// skipped by the engine; orders with unresolvable grouping addresses are
// returned as warnings rather than dropped silently.
func (h GetSchedulingGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetSchedulingGroupsQuery,
) (GetSchedulingGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	pool, err := h.loadPool(ctx)
	if err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	engine := services.NewGroupingEngine()
	groups, warnings, err := engine.GroupOrders(pool, query.Leg())
	if err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	today, err := kernel.NewDay(time.Now())
	if err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	horizon, err := services.NewDateHorizon(today, query.HorizonDays())
	if err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	buckets, err := engine.BucketByDate(groups, horizon)
	if err != nil {
		return GetSchedulingGroupsQueryResponse{}, err
	}

	return GetSchedulingGroupsQueryResponse{
		Groups:   groupResponses(groups),
		Buckets:  bucketResponses(buckets),
		Warnings: warningResponses(warnings),
	}, nil
}

// loadPool reads the scheduling pool rows and restores the domain orders.
// The pool is the union for both legs; the engine narrows it per leg.
func (h GetSchedulingGroupsQueryHandler) loadPool(ctx context.Context) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_name, sender_phone, sender_email,
			sender_street, sender_city, sender_postcode,
			receiver_name, receiver_phone, receiver_email,
			receiver_street, receiver_city, receiver_postcode,
			status,
			sender_candidate_dates, receiver_candidate_dates,
			scheduled_pickup_at, scheduled_delivery_at,
			pickup_timeslot, delivery_timeslot,
			pickup_job_ref, delivery_job_ref,
			version
		FROM orders
		WHERE status IN (?, ?, ?, ?, ?)
		ORDER BY id
	`,
		order.SenderAvailabilityConfirmed.String(),
		order.ReceiverAvailabilityConfirmed.String(),
		order.PendingApproval.String(),
		order.ScheduledDatesPending.String(),
		order.CollectionScheduled.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pool := make([]*order.Order, 0)

	for rows.Next() {
		var id uuid.UUID
		var senderName, senderPhone, senderEmail string
		var senderStreet, senderCity, senderPostcode string
		var receiverName, receiverPhone, receiverEmail string
		var receiverStreet, receiverCity, receiverPostcode string
		var status string
		var senderDates, receiverDates pq.StringArray
		var pickupAt, deliveryAt sql.NullTime
		var pickupTimeslot, deliveryTimeslot string
		var pickupJobRef, deliveryJobRef string
		var version int

		err = rows.Scan(
			&id,
			&senderName, &senderPhone, &senderEmail,
			&senderStreet, &senderCity, &senderPostcode,
			&receiverName, &receiverPhone, &receiverEmail,
			&receiverStreet, &receiverCity, &receiverPostcode,
			&status,
			&senderDates, &receiverDates,
			&pickupAt, &deliveryAt,
			&pickupTimeslot, &deliveryTimeslot,
			&pickupJobRef, &deliveryJobRef,
			&version,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		sender, senderErr := restoreParty(
			senderName, senderPhone, senderEmail,
			senderStreet, senderCity, senderPostcode,
		)
		if senderErr != nil {
			return nil, senderErr
		}

		receiver, receiverErr := restoreParty(
			receiverName, receiverPhone, receiverEmail,
			receiverStreet, receiverCity, receiverPostcode,
		)
		if receiverErr != nil {
			return nil, receiverErr
		}

		orderStatus, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}

		senderDays, daysErr := parseDays(senderDates)
		if daysErr != nil {
			return nil, daysErr
		}

		receiverDays, daysErr := parseDays(receiverDates)
		if daysErr != nil {
			return nil, daysErr
		}

		aggregate, restoreErr := order.RestoreOrder(
			orderID,
			sender,
			receiver,
			orderStatus,
			senderDays,
			receiverDays,
			nullableTime(pickupAt),
			nullableTime(deliveryAt),
			pickupTimeslot,
			deliveryTimeslot,
			pickupJobRef,
			deliveryJobRef,
			version,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		pool = append(pool, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}

func restoreParty(name, phone, email, street, city, postcode string) (order.Party, error) {
	address, err := kernel.NewAddress(street, city, postcode)
	if err != nil {
		return order.Party{}, err
	}

	return order.NewParty(name, phone, email, address)
}

func parseDays(values pq.StringArray) ([]kernel.Day, error) {
	days := make([]kernel.Day, 0, len(values))
	for _, value := range values {
		day, err := kernel.ParseDay(value)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}

func groupResponses(groups []services.SchedulingGroup) []SchedulingGroupResponse {
	responses := make([]SchedulingGroupResponse, 0, len(groups))
	for _, group := range groups {
		members := make([]GroupMemberResponse, 0, len(group.Members))
		for _, member := range group.Members {
			members = append(members, GroupMemberResponse{
				OrderID:        member.OrderID,
				CandidateDates: member.CandidateDates,
			})
		}

		responses = append(responses, SchedulingGroupResponse{
			LocationKey: group.LocationKey,
			Lane:        group.Lane,
			Members:     members,
		})
	}
	return responses
}

func bucketResponses(buckets []services.DateBucket) []DateBucketResponse {
	responses := make([]DateBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		responses = append(responses, DateBucketResponse{
			Day:    bucket.Day,
			Groups: groupResponses(bucket.Groups),
		})
	}
	return responses
}

func warningResponses(warnings []services.GroupingWarning) []GroupingWarningResponse {
	responses := make([]GroupingWarningResponse, 0, len(warnings))
	for _, warning := range warnings {
		responses = append(responses, GroupingWarningResponse{
			OrderID: warning.OrderID,
			Cause:   warning.Cause.Error(),
		})
	}
	return responses
}
