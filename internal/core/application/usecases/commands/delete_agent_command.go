package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteAgentCommandIsNotConstructed = errors.New(
	"DeleteAgentCommand must be created via NewDeleteAgentCommand constructor",
)

// DeleteAgentCommand removes an agent from the directory.
type DeleteAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAgentCommand creates a command to delete an agent.
func NewDeleteAgentCommand(agentID kernel.UUID) (DeleteAgentCommand, error) {
	cmd := DeleteAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return DeleteAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAgentCommandIsNotConstructed if validation fails.
func (c DeleteAgentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAgentCommandIsNotConstructed)
}

// AgentID returns the agent being deleted.
func (c DeleteAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *DeleteAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
