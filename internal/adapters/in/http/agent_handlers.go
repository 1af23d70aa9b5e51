package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// RegisterAgent handles POST /deliveries/agents - self-service signup. The new
// agent starts pending approval.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewRegisterAgentCommand(
		req.Name, req.Email, req.Phone,
		req.VehicleType, req.LicenseNumber, req.Password,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	registered, err := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusCreated, agentFromAggregate(registered))
}

// InviteAgent handles POST /deliveries/agents/admin - admin provisioning. The
// response carries the invite token; it is not retrievable afterwards.
func (s *Server) InviteAgent(ctx echo.Context) error {
	var req InviteAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewInviteAgentCommand(
		req.Name, req.Email, req.Phone,
		req.VehicleType, req.LicenseNumber,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	invited, err := s.inviteAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	body := InvitedAgentJSON{
		AgentJSON:            agentFromAggregate(invited),
		InviteTokenExpiresAt: invited.InviteTokenExpiresAt(),
	}
	if token := invited.InviteToken(); token != nil {
		body.InviteToken = *token
	}

	return ctx.JSON(http.StatusCreated, body)
}

// ApproveAgent handles PUT /deliveries/agents/{id}/approve.
func (s *Server) ApproveAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveAgentCommand(agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	approved, err := s.approveAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, agentFromAggregate(approved))
}

// UpdateAgentStatus handles PUT /deliveries/agents/{id}/status?status=.
func (s *Server) UpdateAgentStatus(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentStatusCommand(agentID, ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.updateAgentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, agentFromAggregate(updated))
}

// DeleteAgent handles DELETE /deliveries/agents/{id}. Refused while the agent
// still carries active deliveries.
func (s *Server) DeleteAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteAgentCommand(agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.deleteAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableAgents handles GET /deliveries/agents/available - the dispatch
// pool, most recently active first.
func (s *Server) GetAvailableAgents(ctx echo.Context) error {
	rows, err := s.getAvailableHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableAgentsQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, agentsFromReadModels(rows))
}

// GetPendingAgents handles GET /deliveries/agents/pending - the approval queue.
func (s *Server) GetPendingAgents(ctx echo.Context) error {
	rows, err := s.getPendingAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetPendingAgentsQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, agentsFromReadModels(rows))
}

// GetAgentByID handles GET /deliveries/agents/{id}.
func (s *Server) GetAgentByID(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetAgentByIDQuery(agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getAgentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, agentFromReadModel(row))
}

// GetAgentByEmail handles GET /deliveries/agents/email/{email}.
func (s *Server) GetAgentByEmail(ctx echo.Context) error {
	query, err := queries.NewGetAgentByEmailQuery(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getAgentByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, agentFromReadModel(row))
}
