package http

import (
	"errors"
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/generated/servers"
	"booking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	requestAvailabilityHandler commands.RequestAvailabilityCommandHandler
	confirmAvailabilityHandler commands.ConfirmAvailabilityCommandHandler
	scheduleLegHandler         commands.ScheduleLegCommandHandler
	finalizeScheduleHandler    commands.FinalizeScheduleCommandHandler
	resetScheduleHandler       commands.ResetScheduleCommandHandler
	recordProgressHandler      commands.RecordProgressCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	assignGroupDateHandler     commands.AssignGroupDateCommandHandler
	dispatchGroupHandler       commands.DispatchGroupCommandHandler

	// Query handlers
	getPendingScheduleOrdersHandler queries.GetPendingScheduleOrdersQueryHandler
	getSchedulingGroupsHandler      queries.GetSchedulingGroupsQueryHandler

	defaultHorizonDays int
}

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultHorizonDays is the planning board horizon used when the caller does
// not pass one.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	requestAvailabilityHandler commands.RequestAvailabilityCommandHandler,
	confirmAvailabilityHandler commands.ConfirmAvailabilityCommandHandler,
	scheduleLegHandler commands.ScheduleLegCommandHandler,
	finalizeScheduleHandler commands.FinalizeScheduleCommandHandler,
	resetScheduleHandler commands.ResetScheduleCommandHandler,
	recordProgressHandler commands.RecordProgressCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignGroupDateHandler commands.AssignGroupDateCommandHandler,
	dispatchGroupHandler commands.DispatchGroupCommandHandler,
	getPendingScheduleOrdersHandler queries.GetPendingScheduleOrdersQueryHandler,
	getSchedulingGroupsHandler queries.GetSchedulingGroupsQueryHandler,
	defaultHorizonDays int,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		requestAvailabilityHandler:      requestAvailabilityHandler,
		confirmAvailabilityHandler:      confirmAvailabilityHandler,
		scheduleLegHandler:              scheduleLegHandler,
		finalizeScheduleHandler:         finalizeScheduleHandler,
		resetScheduleHandler:            resetScheduleHandler,
		recordProgressHandler:           recordProgressHandler,
		cancelOrderHandler:              cancelOrderHandler,
		assignGroupDateHandler:          assignGroupDateHandler,
		dispatchGroupHandler:            dispatchGroupHandler,
		getPendingScheduleOrdersHandler: getPendingScheduleOrdersHandler,
		getSchedulingGroupsHandler:      getSchedulingGroupsHandler,
		defaultHorizonDays:              defaultHorizonDays,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sender, err := toParty(newOrder.Sender)
	if err != nil {
		return badRequest(ctx, "Invalid sender: "+err.Error())
	}

	receiver, err := toParty(newOrder.Receiver)
	if err != nil {
		return badRequest(ctx, "Invalid receiver: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, sender, receiver)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// RequestAvailability handles POST /api/v1/orders/{orderId}/availability-requests.
func (s *Server) RequestAvailability(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	party, err := order.ParsePartyRole(string(request.Party))
	if err != nil {
		return badRequest(ctx, "Invalid party: "+err.Error())
	}

	cmd, err := commands.NewRequestAvailabilityCommand(orderID, party)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.requestAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ConfirmAvailability handles POST /api/v1/orders/{orderId}/availability.
func (s *Server) ConfirmAvailability(ctx echo.Context, orderId openapi_types.UUID) error {
	var confirmation servers.AvailabilityConfirmation
	if err := ctx.Bind(&confirmation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	party, err := order.ParsePartyRole(string(confirmation.Party))
	if err != nil {
		return badRequest(ctx, "Invalid party: "+err.Error())
	}

	dates := make([]kernel.Day, 0, len(confirmation.Dates))
	for _, date := range confirmation.Dates {
		day, dayErr := kernel.NewDay(date.Time)
		if dayErr != nil {
			return badRequest(ctx, "Invalid date: "+dayErr.Error())
		}
		dates = append(dates, day)
	}

	cmd, err := commands.NewConfirmAvailabilityCommand(orderID, party, dates)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.confirmAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// A repeat submission is a no-op for the caller; the first
		// submission stays untouched.
		if errors.Is(err, order.ErrAlreadyConfirmed) {
			return ctx.JSON(http.StatusOK, servers.AvailabilityResult{Status: "already_confirmed"})
		}
		return s.mapError(ctx, err)
	}

	response := servers.AvailabilityResult{Status: result.Status.String()}
	if result.HasWindow {
		response.SuggestedWindow = &servers.SchedulingWindow{
			PickupDate:   openapi_types.Date{Time: result.PickupDay.Time()},
			DeliveryDate: openapi_types.Date{Time: result.DeliveryDay.Time()},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ScheduleLeg handles POST /api/v1/orders/{orderId}/schedule.
func (s *Server) ScheduleLeg(ctx echo.Context, orderId openapi_types.UUID) error {
	var schedule servers.LegSchedule
	if err := ctx.Bind(&schedule); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	leg, err := order.ParseLeg(string(schedule.Leg))
	if err != nil {
		return badRequest(ctx, "Invalid leg: "+err.Error())
	}

	cmd, err := commands.NewScheduleLegCommand(orderID, leg, schedule.At, deref(schedule.Timeslot))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.scheduleLegHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeSchedule handles POST /api/v1/orders/{orderId}/schedule/finalize.
func (s *Server) FinalizeSchedule(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewFinalizeScheduleCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.finalizeScheduleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetSchedule handles POST /api/v1/orders/{orderId}/schedule/reset.
func (s *Server) ResetSchedule(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewResetScheduleCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.resetScheduleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordProgress handles POST /api/v1/orders/{orderId}/progress.
func (s *Server) RecordProgress(ctx echo.Context, orderId openapi_types.UUID) error {
	var report servers.ProgressReport
	if err := ctx.Bind(&report); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	event, err := order.ParseProgressEvent(string(report.Event))
	if err != nil {
		return badRequest(ctx, "Invalid event: "+err.Error())
	}

	cmd, err := commands.NewRecordProgressCommand(orderID, event)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.recordProgressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingScheduleOrders handles GET /api/v1/orders/pending-schedule.
func (s *Server) GetPendingScheduleOrders(ctx echo.Context) error {
	query := queries.NewGetPendingScheduleOrdersQuery()

	pending, err := s.getPendingScheduleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending orders")
	}

	response := make([]servers.PendingOrder, len(pending))
	for i, item := range pending {
		response[i] = servers.PendingOrder{
			Id:                item.ID.Bytes(),
			Status:            item.Status.String(),
			Route:             item.Route,
			SenderDateCount:   item.SenderDateCount,
			ReceiverDateCount: item.ReceiverDateCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSchedulingGroups handles GET /api/v1/scheduling-groups.
func (s *Server) GetSchedulingGroups(ctx echo.Context, params servers.GetSchedulingGroupsParams) error {
	leg, err := order.ParseLeg(string(params.Leg))
	if err != nil {
		return badRequest(ctx, "Invalid leg: "+err.Error())
	}

	horizonDays := s.defaultHorizonDays
	if params.HorizonDays != nil {
		horizonDays = *params.HorizonDays
	}

	query, err := queries.NewGetSchedulingGroupsQuery(leg, horizonDays)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	board, err := s.getSchedulingGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute planning board")
	}

	response := servers.PlanningBoard{
		Groups:   toGroups(leg, board.Groups),
		Buckets:  make([]servers.DateBucket, len(board.Buckets)),
		Warnings: make([]servers.GroupingWarning, len(board.Warnings)),
	}
	for i, bucket := range board.Buckets {
		response.Buckets[i] = servers.DateBucket{
			Day:    openapi_types.Date{Time: bucket.Day.Time()},
			Groups: toGroups(leg, bucket.Groups),
		}
	}
	for i, warning := range board.Warnings {
		response.Warnings[i] = servers.GroupingWarning{
			OrderId: warning.OrderID.Bytes(),
			Cause:   warning.Cause,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignGroupDate handles POST /api/v1/scheduling-groups/assign-date.
func (s *Server) AssignGroupDate(ctx echo.Context) error {
	var assignment servers.GroupDateAssignment
	if err := ctx.Bind(&assignment); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	leg, err := order.ParseLeg(string(assignment.Leg))
	if err != nil {
		return badRequest(ctx, "Invalid leg: "+err.Error())
	}

	day, err := kernel.NewDay(assignment.Day.Time)
	if err != nil {
		return badRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewAssignGroupDateCommand(leg, assignment.Lane, day, deref(assignment.Timeslot))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcomes, err := s.assignGroupDateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]servers.GroupMemberOutcome, len(outcomes))
	for i, outcome := range outcomes {
		response[i] = servers.GroupMemberOutcome{
			OrderId: outcome.OrderID.Bytes(),
			Success: outcome.Err == nil,
		}
		if outcome.Err != nil {
			message := outcome.Err.Error()
			response[i].Error = &message
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchGroup handles POST /api/v1/scheduling-groups/dispatch.
func (s *Server) DispatchGroup(ctx echo.Context) error {
	var request servers.GroupDispatch
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	leg, err := order.ParseLeg(string(request.Leg))
	if err != nil {
		return badRequest(ctx, "Invalid leg: "+err.Error())
	}

	day, err := kernel.NewDay(request.Day.Time)
	if err != nil {
		return badRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewDispatchGroupCommand(leg, request.Lane, day)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcomes, err := s.dispatchGroupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]servers.DispatchResult, len(outcomes))
	for i, outcome := range outcomes {
		response[i] = servers.DispatchResult{
			OrderId: outcome.OrderID.Bytes(),
			Outcome: servers.DispatchResultOutcome(outcome.Outcome.String()),
		}
		if outcome.JobRef != "" {
			jobRef := outcome.JobRef
			response[i].JobRef = &jobRef
		}
		if outcome.Err != nil {
			message := outcome.Err.Error()
			response[i].Error = &message
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// mapError translates the typed application errors to HTTP status codes.
// Unclassified errors surface as 500 without leaking internals.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrGroupNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrAlreadyConfirmed):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Request failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toParty(dto servers.Party) (order.Party, error) {
	address, err := kernel.NewAddress(dto.Address.Street, deref(dto.Address.City), deref(dto.Address.Postcode))
	if err != nil {
		return order.Party{}, err
	}

	return order.NewParty(dto.Name, deref(dto.Phone), deref(dto.Email), address)
}

func toGroups(leg order.Leg, groups []queries.SchedulingGroupResponse) []servers.SchedulingGroup {
	result := make([]servers.SchedulingGroup, len(groups))
	for i, group := range groups {
		members := make([]servers.GroupMember, len(group.Members))
		for j, member := range group.Members {
			dates := make([]openapi_types.Date, len(member.CandidateDates))
			for k, day := range member.CandidateDates {
				dates[k] = openapi_types.Date{Time: day.Time()}
			}
			members[j] = servers.GroupMember{
				OrderId:        member.OrderID.Bytes(),
				CandidateDates: dates,
			}
		}
		result[i] = servers.SchedulingGroup{
			Leg:         servers.Leg(leg.String()),
			LocationKey: group.LocationKey,
			Lane:        group.Lane,
			Members:     members,
		}
	}
	return result
}
