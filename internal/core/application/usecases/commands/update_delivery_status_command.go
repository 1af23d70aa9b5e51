package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves a delivery to a new lifecycle state.
// The raw status string is parsed at construction, so an unknown status is
// rejected before any transaction starts. An optional reason travels with
// cancellations into the event metadata.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(deliveryID, "PICKED_UP", "")
//	if err != nil {
//	    return fmt.Errorf("bad status: %w", err)
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	reason     string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a delivery's
// lifecycle state. The status string must parse to a known state; reason may
// be empty and is only meaningful for CANCELLED.
func NewUpdateDeliveryStatusCommand(deliveryID kernel.UUID, status, reason string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being updated.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the parsed target state.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// Reason returns the free-text reason attached to a cancellation.
func (c UpdateDeliveryStatusCommand) Reason() string {
	return c.reason
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status string) error {
	parsed, err := delivery.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
