package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrApproveAgentCommandIsNotConstructed = errors.New(
	"ApproveAgentCommand must be created via NewApproveAgentCommand constructor",
)

// ApproveAgentCommand clears a pending agent for deliveries.
type ApproveAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveAgentCommand creates a command to approve an agent.
func NewApproveAgentCommand(agentID kernel.UUID) (ApproveAgentCommand, error) {
	cmd := ApproveAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return ApproveAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveAgentCommandIsNotConstructed if validation fails.
func (c ApproveAgentCommand) Validate() error {
	return c.guard.Validate(ErrApproveAgentCommandIsNotConstructed)
}

// AgentID returns the agent being approved.
func (c ApproveAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *ApproveAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
