package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAutoAssignDeliveryCommandIsNotConstructed = errors.New(
	"AutoAssignDeliveryCommand must be created via NewAutoAssignDeliveryCommand constructor",
)

// AutoAssignDeliveryCommand requests automatic assignment of a delivery to the
// first agent of the available pool. Unlike AssignAgentCommand the agent is
// chosen by the system, not the caller.
type AutoAssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignDeliveryCommand creates a command to auto-assign a delivery.
func NewAutoAssignDeliveryCommand(deliveryID kernel.UUID) (AutoAssignDeliveryCommand, error) {
	cmd := AutoAssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return AutoAssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AutoAssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being assigned.
func (c AutoAssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AutoAssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
