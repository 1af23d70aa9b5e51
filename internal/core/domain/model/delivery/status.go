package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The nominal flow is
//
//	PENDING ──> ASSIGNED ──> PICKED_UP ──> IN_TRANSIT ──> DELIVERED
//	    └──────────────────────┴──────────────┴──> CANCELLED
//
// but intermediate steps may be skipped; only DELIVERED and CANCELLED are
// enforced as terminal. Each status has timestamp side effects owned by the
// Delivery aggregate, not by this type.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of a freshly created delivery.
	Pending

	// Assigned indicates an agent has been bound to the delivery.
	Assigned

	// PickedUp indicates the agent collected the order at the restaurant.
	PickedUp

	// InTransit indicates the order is on its way to the customer.
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the unsuccessful terminal state.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts a wire status string to a Status.
// Unknown strings fail with a value-is-invalid error; this is the only place
// an unparseable status is rejected, before any handler runs.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the status counts as an in-flight delivery for
// the purposes of the agent-deletion guard.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}
