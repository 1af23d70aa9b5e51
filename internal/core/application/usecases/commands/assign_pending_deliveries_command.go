package commands

import (
	"dispatch/internal/pkg/guard"
	"errors"
)

var ErrAssignPendingDeliveriesCommandIsNotConstructed = errors.New(
	"AssignPendingDeliveriesCommand must be created via NewAssignPendingDeliveriesCommand constructor",
)

// AssignPendingDeliveriesCommand triggers one sweep of the background
// assignment loop: take the oldest PENDING delivery and auto-assign it.
// This command represents the business operation of matching waiting
// deliveries with the available agent pool.
//
// Example:
//
//	cmd := NewAssignPendingDeliveriesCommand()
//	handler := NewAssignPendingDeliveriesCommandHandler(uowFactory, publisher)
//	_, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No pending deliveries or no available agents: %v", err)
//	}
type AssignPendingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingDeliveriesCommand creates a new command to trigger the sweep.
// This is a parameterless command that initiates the delivery-agent matching process.
func NewAssignPendingDeliveriesCommand() AssignPendingDeliveriesCommand {
	return AssignPendingDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingDeliveriesCommandIsNotConstructed if validation fails.
func (c *AssignPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingDeliveriesCommandIsNotConstructed,
	)
}
