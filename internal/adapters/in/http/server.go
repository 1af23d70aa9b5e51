// Package http exposes the dispatch service over REST using echo.
// Handlers translate between the wire contract and the application's commands
// and queries; all error responses carry a JSON {code,message} body.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	updateDeliveryHandler    commands.UpdateDeliveryCommandHandler
	assignAgentHandler       commands.AssignAgentCommandHandler
	autoAssignHandler        commands.AutoAssignDeliveryCommandHandler
	updateStatusHandler      commands.UpdateDeliveryStatusCommandHandler
	registerAgentHandler     commands.RegisterAgentCommandHandler
	inviteAgentHandler       commands.InviteAgentCommandHandler
	approveAgentHandler      commands.ApproveAgentCommandHandler
	updateAgentStatusHandler commands.UpdateAgentStatusCommandHandler
	deleteAgentHandler       commands.DeleteAgentCommandHandler

	// Query handlers
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler
	getPendingHandler       queries.GetPendingDeliveriesQueryHandler
	getByCustomerHandler    queries.GetDeliveriesByCustomerQueryHandler
	getByAgentHandler       queries.GetDeliveriesByAgentQueryHandler
	getByOrderHandler       queries.GetDeliveryByOrderQueryHandler
	getAvailableHandler     queries.GetAvailableAgentsQueryHandler
	getPendingAgentsHandler queries.GetPendingAgentsQueryHandler
	getAgentByIDHandler     queries.GetAgentByIDQueryHandler
	getAgentByEmailHandler  queries.GetAgentByEmailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	autoAssignHandler commands.AutoAssignDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	inviteAgentHandler commands.InviteAgentCommandHandler,
	approveAgentHandler commands.ApproveAgentCommandHandler,
	updateAgentStatusHandler commands.UpdateAgentStatusCommandHandler,
	deleteAgentHandler commands.DeleteAgentCommandHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getPendingHandler queries.GetPendingDeliveriesQueryHandler,
	getByCustomerHandler queries.GetDeliveriesByCustomerQueryHandler,
	getByAgentHandler queries.GetDeliveriesByAgentQueryHandler,
	getByOrderHandler queries.GetDeliveryByOrderQueryHandler,
	getAvailableHandler queries.GetAvailableAgentsQueryHandler,
	getPendingAgentsHandler queries.GetPendingAgentsQueryHandler,
	getAgentByIDHandler queries.GetAgentByIDQueryHandler,
	getAgentByEmailHandler queries.GetAgentByEmailQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:    createDeliveryHandler,
		updateDeliveryHandler:    updateDeliveryHandler,
		assignAgentHandler:       assignAgentHandler,
		autoAssignHandler:        autoAssignHandler,
		updateStatusHandler:      updateStatusHandler,
		registerAgentHandler:     registerAgentHandler,
		inviteAgentHandler:       inviteAgentHandler,
		approveAgentHandler:      approveAgentHandler,
		updateAgentStatusHandler: updateAgentStatusHandler,
		deleteAgentHandler:       deleteAgentHandler,
		getAllDeliveriesHandler:  getAllDeliveriesHandler,
		getPendingHandler:        getPendingHandler,
		getByCustomerHandler:     getByCustomerHandler,
		getByAgentHandler:        getByAgentHandler,
		getByOrderHandler:        getByOrderHandler,
		getAvailableHandler:      getAvailableHandler,
		getPendingAgentsHandler:  getPendingAgentsHandler,
		getAgentByIDHandler:      getAgentByIDHandler,
		getAgentByEmailHandler:   getAgentByEmailHandler,
	}
}

// RegisterRoutes binds every route of the wire contract onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/deliveries", s.CreateDelivery)
	e.GET("/deliveries", s.GetAllDeliveries)
	e.GET("/deliveries/pending", s.GetPendingDeliveries)
	e.GET("/deliveries/customer/:id", s.GetDeliveriesByCustomer)
	e.GET("/deliveries/agent/:id", s.GetDeliveriesByAgent)
	e.GET("/deliveries/order/:id", s.GetDeliveryByOrder)
	e.PUT("/deliveries/:id", s.UpdateDelivery)
	e.PUT("/deliveries/:id/status", s.UpdateDeliveryStatus)
	e.POST("/deliveries/:id/assign", s.AssignAgent)
	e.POST("/deliveries/:id/auto-assign", s.AutoAssignDelivery)

	e.POST("/deliveries/agents", s.RegisterAgent)
	e.POST("/deliveries/agents/admin", s.InviteAgent)
	e.GET("/deliveries/agents/available", s.GetAvailableAgents)
	e.GET("/deliveries/agents/pending", s.GetPendingAgents)
	e.GET("/deliveries/agents/email/:email", s.GetAgentByEmail)
	e.GET("/deliveries/agents/:id", s.GetAgentByID)
	e.PUT("/deliveries/agents/:id/status", s.UpdateAgentStatus)
	e.PUT("/deliveries/agents/:id/approve", s.ApproveAgent)
	e.DELETE("/deliveries/agents/:id", s.DeleteAgent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// writeError maps an application error onto the wire contract. Missing objects
// are 404 on pure reads and 400 on mutations (notFoundCode chooses); business
// rule violations and validation failures are 400; duplicate registration is
// 409; everything else is a 500.
func writeError(ctx echo.Context, err error, notFoundCode int) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = notFoundCode
	case errors.Is(err, commands.ErrEmailAlreadyRegistered):
		code = http.StatusConflict
	case errors.Is(err, services.ErrAgentInactive),
		errors.Is(err, services.ErrNoAvailableAgents),
		errors.Is(err, commands.ErrAgentHasActiveDeliveries),
		errors.Is(err, delivery.ErrDeliveryCompleted),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// badRequest responds 400 with the error message.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
