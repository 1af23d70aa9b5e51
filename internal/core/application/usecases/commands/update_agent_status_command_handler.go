package commands

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
)

// UpdateAgentStatusCommandHandler applies parsed status changes to agents.
// Every change, whichever field it targets, refreshes the agent's last-active
// timestamp and so moves it to the front of the available pool ordering.
type UpdateAgentStatusCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentStatusCommandHandler creates a handler for agent status updates.
func NewUpdateAgentStatusCommandHandler(uowFactory AgentUoWFactory) UpdateAgentStatusCommandHandler {
	return UpdateAgentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the agent, applies the change through the aggregate, and persists the
// result. Returns the updated agent.
func (h UpdateAgentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateAgentStatusCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	a, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if err = a.ApplyStatusChange(cmd.Change()); err != nil {
		return nil, err
	}

	if err = agentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
