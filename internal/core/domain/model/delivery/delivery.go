package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrOrderIDIsRequired is returned when attempting to create a delivery without an order id.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")
	// ErrRestaurantIDIsRequired is returned when attempting to create a delivery without a restaurant id.
	ErrRestaurantIDIsRequired = errs.NewValueIsRequiredError("restaurant id")
	// ErrCustomerIDIsRequired is returned when attempting to create a delivery without a customer id.
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer id")
	// ErrPickupAddressIsRequired is returned when attempting to create a delivery without a pickup address.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickup address")
	// ErrDeliveryAddressIsRequired is returned when attempting to create a delivery without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrDeliveryCompleted is returned when updating a delivery that reached a terminal status.
	ErrDeliveryCompleted = errors.New("delivery is in a terminal status and can no longer change")
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery represents one courier assignment record tied 1:1 to an order.
// It is an aggregate root owning the lifecycle status, the per-status
// timestamps, and a non-owning reference (by id) to the bound agent.
//
// Business rules:
//   - assignedAt is set when the delivery is first bound to an agent
//   - pickedUpAt is set when the status reaches PICKED_UP
//   - deliveredAt is set when the status reaches DELIVERED
//   - DELIVERED and CANCELLED are terminal; any further change is rejected
//   - the agent reference survives completion; deletion of an agent is the
//     only thing that clears it, and that happens at the repository layer
type Delivery struct {
	// id uniquely identifies the delivery
	id kernel.UUID
	// orderID links the delivery to its order (one delivery per order)
	orderID int64
	// restaurantID identifies the pickup restaurant
	restaurantID int64
	// customerID identifies the receiving customer
	customerID int64
	// pickupAddress is the free-text restaurant address
	pickupAddress string
	// deliveryAddress is the free-text customer address
	deliveryAddress string
	// status is the current lifecycle state
	status Status
	// etaMinutes is the creation-time delivery estimate in minutes
	etaMinutes float64
	// agentID references the bound agent, nil while unassigned
	agentID *kernel.UUID
	// notes is optional free text attached by operators
	notes string
	// createdAt, assignedAt, pickedUpAt, deliveredAt mark lifecycle points;
	// all but createdAt stay nil until their status is reached
	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	// guard ensures the delivery was properly constructed
	guard guard.ConstructorGuard
}

// NewDelivery creates a new PENDING Delivery for an order.
// The ETA is computed by the caller's estimator at creation time and recorded
// as-is; it is never recomputed.
func NewDelivery(id kernel.UUID, orderID, restaurantID, customerID int64, pickupAddress, deliveryAddress string, etaMinutes float64) (*Delivery, error) {
	d := &Delivery{
		status:    Pending,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setParties(orderID, restaurantID, customerID),
		d.setAddresses(pickupAddress, deliveryAddress),
	); err != nil {
		return nil, err
	}

	d.etaMinutes = etaMinutes
	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage
// with its complete lifecycle state.
func RestoreDelivery(
	id kernel.UUID,
	orderID, restaurantID, customerID int64,
	pickupAddress, deliveryAddress string,
	status Status,
	etaMinutes float64,
	agentID *kernel.UUID,
	notes string,
	createdAt time.Time,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		etaMinutes:  etaMinutes,
		agentID:     agentID,
		notes:       notes,
		createdAt:   createdAt,
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setParties(orderID, restaurantID, customerID),
		d.setAddresses(pickupAddress, deliveryAddress),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks that the Delivery was created through one of the constructors.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the unique identifier of the delivery.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this delivery fulfils.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// RestaurantID returns the pickup restaurant id.
func (d *Delivery) RestaurantID() int64 {
	return d.restaurantID
}

// CustomerID returns the receiving customer id.
func (d *Delivery) CustomerID() int64 {
	return d.customerID
}

// PickupAddress returns the free-text restaurant address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DeliveryAddress returns the free-text customer address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// EtaMinutes returns the creation-time delivery estimate in minutes.
func (d *Delivery) EtaMinutes() float64 {
	return d.etaMinutes
}

// AgentID returns the bound agent's id, or nil while unassigned.
func (d *Delivery) AgentID() *kernel.UUID {
	return d.agentID
}

// Notes returns the optional operator notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// AssignedAt returns when the delivery was first assigned, nil if never.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the order was picked up, nil if not yet.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the order was delivered, nil if not yet.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Assign binds an agent to the delivery, moving it to ASSIGNED and stamping
// assignedAt. Rebinding an already assigned delivery is allowed; the caller
// is responsible for releasing the displaced agent.
func (d *Delivery) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return ErrDeliveryCompleted
	}

	now := time.Now()
	d.agentID = &agentID
	d.status = Assigned
	d.assignedAt = &now
	return nil
}

// ChangeStatus applies a new lifecycle state with its timestamp side effects:
// PICKED_UP stamps pickedUpAt, DELIVERED stamps deliveredAt, every other
// target only updates the status field. Transitions out of a terminal state
// are rejected with ErrDeliveryCompleted; everything else is permitted,
// including skipping intermediate states.
func (d *Delivery) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return ErrDeliveryCompleted
	}

	d.status = newStatus

	now := time.Now()
	switch newStatus {
	case PickedUp:
		d.pickedUpAt = &now
	case Delivered:
		d.deliveredAt = &now
	}

	return nil
}

// UpdateDetails rewrites the identifying fields and addresses of an existing
// record. Nil pointers leave the corresponding field untouched. The status
// machine is not involved.
func (d *Delivery) UpdateDetails(orderID, restaurantID, customerID *int64, pickupAddress, deliveryAddress *string) error {
	next := *d
	if orderID != nil {
		next.orderID = *orderID
	}
	if restaurantID != nil {
		next.restaurantID = *restaurantID
	}
	if customerID != nil {
		next.customerID = *customerID
	}
	if pickupAddress != nil {
		next.pickupAddress = *pickupAddress
	}
	if deliveryAddress != nil {
		next.deliveryAddress = *deliveryAddress
	}

	if err := errors.Join(
		d.setParties(next.orderID, next.restaurantID, next.customerID),
		d.setAddresses(next.pickupAddress, next.deliveryAddress),
	); err != nil {
		return err
	}

	return nil
}

// SetNotes attaches free-text operator notes to the delivery.
func (d *Delivery) SetNotes(notes string) {
	d.notes = notes
}

// setID sets the delivery's unique identifier with validation.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setParties sets the order, restaurant and customer references with validation.
func (d *Delivery) setParties(orderID, restaurantID, customerID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	if restaurantID <= 0 {
		return ErrRestaurantIDIsRequired
	}
	if customerID <= 0 {
		return ErrCustomerIDIsRequired
	}

	d.orderID = orderID
	d.restaurantID = restaurantID
	d.customerID = customerID
	return nil
}

// setAddresses sets the pickup and delivery addresses with validation.
func (d *Delivery) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	d.pickupAddress = pickupAddress
	d.deliveryAddress = deliveryAddress
	return nil
}

// setStatus sets the lifecycle state with validation.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}
