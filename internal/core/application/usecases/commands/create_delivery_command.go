package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrOrderIDIsInvalid      = errors.New("order id must be greater than 0")
	ErrRestaurantIDIsInvalid = errors.New("restaurant id must be greater than 0")
	ErrCustomerIDIsInvalid   = errors.New("customer id must be greater than 0")
	ErrPickupAddressIsEmpty  = errors.New("pickup address is required")
	ErrDropoffAddressIsEmpty = errors.New("delivery address is required")
)

// CreateDeliveryCommand represents a request to open a new delivery record for
// an order. The record starts in PENDING status and waits for an agent.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, 42, 7, 1001, "12 Baker St", "221B Baker St")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
//	fmt.Printf("Delivery %s awaiting assignment", created.ID())
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	orderID         int64
	restaurantID    int64
	customerID      int64
	pickupAddress   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a delivery record.
// Validates that the id is valid, all party references are positive, and both
// addresses are non-empty. Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID, restaurantID, customerID int64,
	pickupAddress, deliveryAddress string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setParties(orderID, restaurantID, customerID),
		cmd.setAddresses(pickupAddress, deliveryAddress),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order the delivery fulfils.
func (c CreateDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// RestaurantID returns the pickup restaurant id.
func (c CreateDeliveryCommand) RestaurantID() int64 {
	return c.restaurantID
}

// CustomerID returns the receiving customer id.
func (c CreateDeliveryCommand) CustomerID() int64 {
	return c.customerID
}

// PickupAddress returns the free-text restaurant address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the free-text customer address.
func (c CreateDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setParties(orderID, restaurantID, customerID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}
	if restaurantID <= 0 {
		return ErrRestaurantIDIsInvalid
	}
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.orderID = orderID
	c.restaurantID = restaurantID
	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsEmpty
	}
	if deliveryAddress == "" {
		return ErrDropoffAddressIsEmpty
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}
