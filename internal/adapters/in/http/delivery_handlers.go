package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CreateDelivery handles POST /deliveries - opens a new delivery record.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(),
		req.OrderID, req.RestaurantID, req.CustomerID,
		req.PickupAddress, req.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusCreated, deliveryFromAggregate(created))
}

// UpdateDelivery handles PUT /deliveries/{id} - back-office field corrections.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		deliveryID,
		req.OrderID, req.RestaurantID, req.CustomerID,
		req.PickupAddress, req.DeliveryAddress, req.Notes,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// UpdateDeliveryStatus handles PUT /deliveries/{id}/status?status= - lifecycle
// transitions. An optional reason query parameter travels with cancellations.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID,
		ctx.QueryParam("status"),
		ctx.QueryParam("reason"),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// AssignAgent handles POST /deliveries/{id}/assign?agentId= - manual assignment.
func (s *Server) AssignAgent(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(ctx.QueryParam("agentId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(deliveryID, agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	assigned, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(assigned))
}

// AutoAssignDelivery handles POST /deliveries/{id}/auto-assign - assignment
// from the available pool.
func (s *Server) AutoAssignDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAutoAssignDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	assigned, err := s.autoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(assigned))
}

// GetAllDeliveries handles GET /deliveries - the full ledger, newest first.
func (s *Server) GetAllDeliveries(ctx echo.Context) error {
	rows, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetAllDeliveriesQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromReadModels(rows))
}

// GetPendingDeliveries handles GET /deliveries/pending - the waiting queue,
// oldest first.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	rows, err := s.getPendingHandler.Handle(ctx.Request().Context(), queries.NewGetPendingDeliveriesQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromReadModels(rows))
}

// GetDeliveriesByCustomer handles GET /deliveries/customer/{id}.
func (s *Server) GetDeliveriesByCustomer(ctx echo.Context) error {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("customer id"))
	}

	query, err := queries.NewGetDeliveriesByCustomerQuery(customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.getByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromReadModels(rows))
}

// GetDeliveriesByAgent handles GET /deliveries/agent/{id}?active=true.
func (s *Server) GetDeliveriesByAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	activeOnly := ctx.QueryParam("active") == "true"

	query, err := queries.NewGetDeliveriesByAgentQuery(agentID, activeOnly)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.getByAgentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromReadModels(rows))
}

// GetDeliveryByOrder handles GET /deliveries/order/{id} - resolves an order to
// its delivery.
func (s *Server) GetDeliveryByOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("order id"))
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, deliveryFromReadModel(row))
}
