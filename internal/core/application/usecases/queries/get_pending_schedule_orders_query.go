package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/guard"
)

var (
	ErrGetPendingScheduleOrdersQueryIsNotConstructed = errors.New(
		"GetPendingScheduleOrdersQuery must be created via NewGetPendingScheduleOrdersQuery constructor",
	)
)

// GetPendingScheduleOrdersQuery retrieves all orders awaiting scheduling work.
// Returns orders in the scheduling pool, from availability collection through
// a booked collection with the delivery leg still open, for the operator's
// work list.
//
// Example:
//
//	query := NewGetPendingScheduleOrdersQuery()
//	handler := NewGetPendingScheduleOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting scheduling\n", len(orders))
//	for _, order := range orders {
//	    fmt.Printf("Order %s [%s] %s\n", order.ID, order.Status, order.Route)
//	}
type GetPendingScheduleOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingScheduleOrdersQuery creates a query to retrieve the scheduling pool.
// This is a parameterless query that fetches every order with an open leg.
func NewGetPendingScheduleOrdersQuery() GetPendingScheduleOrdersQuery {
	return GetPendingScheduleOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingScheduleOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingScheduleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingScheduleOrdersQueryIsNotConstructed)
}

// GetPendingScheduleOrdersQueryResponse represents one order on the operator's
// scheduling work list. The route summarises the lane as "sender city ->
// receiver city"; the date counts show how much availability each party has
// offered so far.
type GetPendingScheduleOrdersQueryResponse struct {
	ID                kernel.UUID
	Status            order.Status
	Route             string
	SenderDateCount   int
	ReceiverDateCount int
}
