package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand binds a specific agent to a specific delivery.
// This is the manual assignment path used by operators; the agent is named
// explicitly instead of being drawn from the available pool.
//
// Example:
//
//	cmd, err := NewAssignAgentCommand(deliveryID, agentID)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrAgentInactive) {
//	    log.Printf("Agent %s is deactivated", agentID)
//	}
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	agentID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to bind an agent to a delivery.
// Both identifiers must be valid UUIDs.
func NewAssignAgentCommand(deliveryID, agentID kernel.UUID) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// DeliveryID returns the delivery being assigned.
func (c AssignAgentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// AgentID returns the agent to bind.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignAgentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
