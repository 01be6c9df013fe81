package queries

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingScheduleOrdersQueryHandler retrieves the scheduling pool from the
// database. Filters to the statuses with at least one open leg so operators
// see the orders that still need a date decision.
//
// Example:
//
//	handler := NewGetPendingScheduleOrdersQueryHandler(db)
//	query := NewGetPendingScheduleOrdersQuery()
//
//	pendingOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending orders: %v", err)
//	    return err
//	}
//
//	if len(pendingOrders) > 0 {
//	    fmt.Printf("%d orders awaiting scheduling\n", len(pendingOrders))
//	}
type GetPendingScheduleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingScheduleOrdersQueryHandler creates a handler for scheduling pool queries.
// Requires a GORM database connection for query execution.
func NewGetPendingScheduleOrdersQueryHandler(db *gorm.DB) GetPendingScheduleOrdersQueryHandler {
	return GetPendingScheduleOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders awaiting scheduling.
// Returns orders between availability collection and a fully booked schedule,
// including booked collections whose delivery leg is still open.
// Results are sorted by order ID for consistent output.
func (h GetPendingScheduleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingScheduleOrdersQuery,
) ([]GetPendingScheduleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingScheduleOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			sender_city,
			receiver_city,
			COALESCE(array_length(sender_candidate_dates, 1), 0),
			COALESCE(array_length(receiver_candidate_dates, 1), 0)
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

	for rows.Next() {
		var orderResp GetPendingScheduleOrdersQueryResponse
		var id uuid.UUID
		var status, senderCity, receiverCity string

		err = rows.Scan(
			&id,
			&status,
			&senderCity,
			&receiverCity,
			&orderResp.SenderDateCount,
			&orderResp.ReceiverDateCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderStatus, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = orderStatus

		orderResp.Route = senderCity + " -> " + receiverCity
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
