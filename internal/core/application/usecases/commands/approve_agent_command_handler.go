package commands

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
)

// ApproveAgentCommandHandler clears pending agents for deliveries.
// Approval is unconditional and idempotent: approving an already approved or
// inactive agent lands it in the same ACTIVE, AVAILABLE state.
type ApproveAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewApproveAgentCommandHandler creates a handler for agent approval.
func NewApproveAgentCommandHandler(uowFactory AgentUoWFactory) ApproveAgentCommandHandler {
	return ApproveAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Loads the agent, approves it (which also makes it available and refreshes
// the last-active timestamp), and persists the change. Returns the agent.
func (h ApproveAgentCommandHandler) Handle(ctx context.Context, cmd ApproveAgentCommand) (*agent.Agent, error) {
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

	a.Approve()

	if err = agentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
