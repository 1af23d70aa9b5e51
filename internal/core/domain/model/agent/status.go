package agent

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ApprovalState is the administrative lifecycle of an agent account.
// It is orthogonal to AvailabilityState: an approved agent may still be
// offline, and a pending agent has no say over availability at all.
//
//	PendingApproval ──> Approved <──> Inactive
//
// Inactive is a reversible administrative disable, not a rejection; an
// inactive agent keeps its history but cannot receive new deliveries.
type ApprovalState int

const (
	// ApprovalUnknown catches uninitialized values.
	ApprovalUnknown ApprovalState = iota

	// PendingApproval marks a self-registered agent awaiting admin review.
	PendingApproval

	// Approved marks an agent cleared to take deliveries.
	Approved

	// Inactive marks an administratively disabled agent.
	// Assignment to inactive agents is rejected.
	Inactive
)

// AvailabilityState is the booking availability of an agent.
type AvailabilityState int

const (
	// AvailabilityUnknown catches uninitialized values.
	AvailabilityUnknown AvailabilityState = iota

	// Available means the agent can be picked by the assignment policy.
	Available

	// Busy means the agent has flagged itself as occupied.
	// Assignment does not set this automatically; agents are not locked
	// while delivering and may hold several concurrent deliveries.
	Busy

	// Offline means the agent is not on shift.
	Offline
)

func approvalStrings() map[ApprovalState]string {
	return map[ApprovalState]string{
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "ACTIVE",
		Inactive:        "INACTIVE",
	}
}

func availabilityStrings() map[AvailabilityState]string {
	return map[AvailabilityState]string{
		Available: "AVAILABLE",
		Busy:      "BUSY",
		Offline:   "OFFLINE",
	}
}

// Validate checks that the value is one of the defined approval states.
func (s ApprovalState) Validate() error {
	if _, ok := approvalStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approval state is invalid", fmt.Errorf("%d is not a valid approval state", s))
	}
	return nil
}

// String returns the wire name of the approval state.
// The names match the legacy combined status vocabulary so that existing
// consumers keep seeing ACTIVE, INACTIVE and PENDING_APPROVAL.
func (s ApprovalState) String() string {
	if str, ok := approvalStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the value is one of the defined availability states.
func (s AvailabilityState) Validate() error {
	if _, ok := availabilityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability state is invalid", fmt.Errorf("%d is not a valid availability state", s))
	}
	return nil
}

// String returns the wire name of the availability state.
func (s AvailabilityState) String() string {
	if str, ok := availabilityStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseApprovalState maps a wire name back to its approval state.
func ParseApprovalState(s string) (ApprovalState, error) {
	for state, str := range approvalStrings() {
		if str == s {
			return state, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause("approval state", fmt.Errorf("%q is not a valid approval state", s))
}

// ParseAvailabilityState maps a wire name back to its availability state.
func ParseAvailabilityState(s string) (AvailabilityState, error) {
	for state, str := range availabilityStrings() {
		if str == s {
			return state, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability state", fmt.Errorf("%q is not a valid availability state", s))
}

// StatusChange is the parsed form of the legacy single-field status update.
// The historical API exposes one status parameter covering both vocabularies;
// parsing decides which orthogonal field the update targets. Exactly one of
// the two pointers is set.
type StatusChange struct {
	Approval     *ApprovalState
	Availability *AvailabilityState
}

// ParseStatusChange maps a legacy status string onto the orthogonal state
// model. AVAILABLE, BUSY and OFFLINE target availability; ACTIVE approves the
// agent and makes it available in one step (matching the historical meaning of
// ACTIVE as "bookable"); INACTIVE and PENDING_APPROVAL target approval.
// Unknown strings fail with a value-is-invalid error before reaching any
// handler.
func ParseStatusChange(status string) (StatusChange, error) {
	switch status {
	case "AVAILABLE":
		v := Available
		return StatusChange{Availability: &v}, nil
	case "BUSY":
		v := Busy
		return StatusChange{Availability: &v}, nil
	case "OFFLINE":
		v := Offline
		return StatusChange{Availability: &v}, nil
	case "ACTIVE":
		v := Approved
		return StatusChange{Approval: &v}, nil
	case "INACTIVE":
		v := Inactive
		return StatusChange{Approval: &v}, nil
	case "PENDING_APPROVAL":
		v := PendingApproval
		return StatusChange{Approval: &v}, nil
	default:
		return StatusChange{}, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid agent status", status))
	}
}
