package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAgentStatusCommandIsNotConstructed = errors.New(
	"UpdateAgentStatusCommand must be created via NewUpdateAgentStatusCommand constructor",
)

// UpdateAgentStatusCommand applies a status update to an agent.
// The API exposes one status vocabulary covering both the approval and the
// availability state; parsing at construction decides which field the update
// targets and rejects unknown statuses before any transaction starts.
//
// Example:
//
//	cmd, err := NewUpdateAgentStatusCommand(agentID, "OFFLINE")
//	if err != nil {
//	    return fmt.Errorf("bad status: %w", err)
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateAgentStatusCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	change  agent.StatusChange

	guard guard.ConstructorGuard
}

// NewUpdateAgentStatusCommand creates a command to update an agent's status.
// The status string must be one of AVAILABLE, BUSY, OFFLINE, ACTIVE, INACTIVE
// or PENDING_APPROVAL.
func NewUpdateAgentStatusCommand(agentID kernel.UUID, status string) (UpdateAgentStatusCommand, error) {
	cmd := UpdateAgentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateAgentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAgentStatusCommandIsNotConstructed if validation fails.
func (c UpdateAgentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentStatusCommandIsNotConstructed)
}

// AgentID returns the agent being updated.
func (c UpdateAgentStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Change returns the parsed status change.
func (c UpdateAgentStatusCommand) Change() agent.StatusChange {
	return c.change
}

func (c *UpdateAgentStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateAgentStatusCommand) setStatus(status string) error {
	change, err := agent.ParseStatusChange(status)
	if err != nil {
		return err
	}

	c.change = change
	return nil
}
