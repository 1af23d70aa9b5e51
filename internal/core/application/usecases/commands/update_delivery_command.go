package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand rewrites the identifying fields of an existing
// delivery record. Nil pointers leave the corresponding field untouched; the
// status machine is not involved. Used by back-office corrections.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	orderID         *int64
	restaurantID    *int64
	customerID      *int64
	pickupAddress   *string
	deliveryAddress *string
	notes           *string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a partial-update command for a delivery
// record. Only the delivery id is mandatory; present fields are validated by
// the aggregate when applied.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID, restaurantID, customerID *int64,
	pickupAddress, deliveryAddress, notes *string,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		orderID:         orderID,
		restaurantID:    restaurantID,
		customerID:      customerID,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being updated.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the replacement order id, or nil to keep the current one.
func (c UpdateDeliveryCommand) OrderID() *int64 {
	return c.orderID
}

// RestaurantID returns the replacement restaurant id, or nil to keep the current one.
func (c UpdateDeliveryCommand) RestaurantID() *int64 {
	return c.restaurantID
}

// CustomerID returns the replacement customer id, or nil to keep the current one.
func (c UpdateDeliveryCommand) CustomerID() *int64 {
	return c.customerID
}

// PickupAddress returns the replacement pickup address, or nil to keep the current one.
func (c UpdateDeliveryCommand) PickupAddress() *string {
	return c.pickupAddress
}

// DeliveryAddress returns the replacement delivery address, or nil to keep the current one.
func (c UpdateDeliveryCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

// Notes returns the replacement operator notes, or nil to keep the current ones.
func (c UpdateDeliveryCommand) Notes() *string {
	return c.notes
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
