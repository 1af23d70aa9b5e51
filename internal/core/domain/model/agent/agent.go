package agent

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create an agent without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create an agent without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleTypeIsRequired is returned when attempting to create an agent without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicle type")
	// ErrLicenseNumberIsRequired is returned when attempting to create an agent without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
	// ErrCredentialIsRequired is returned when a self-registered agent carries no password hash.
	ErrCredentialIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrInviteTokenIsRequired is returned when an invited agent carries no invite token.
	ErrInviteTokenIsRequired = errs.NewValueIsRequiredError("invite token")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent, NewInvitedAgent, or RestoreAgent")
)

// Agent represents a delivery agent (courier) in the system.
// It is an aggregate root that manages agent identity, credential, approval
// workflow, and availability bookkeeping.
//
// Key responsibilities:
//   - Managing agent identity (ID, name, contact details, vehicle, license)
//   - Holding the opaque credential owned by the auth collaborator
//   - Tracking the orthogonal approval and availability states
//   - Refreshing the last-active timestamp on every state change
//
// Business rules:
//   - Email is the uniqueness key, enforced at the repository boundary
//   - Self-registered agents enter PendingApproval with a hashed password
//   - Invited agents are approved immediately and claim an expiring token
//   - Agents hold an unbounded number of concurrent deliveries; assignment
//     never flips them to Busy
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable name of the agent
	name string
	// email is the unique contact address, matched case-sensitively
	email string
	// phone is the contact number forwarded in delivery events
	phone string
	// vehicleType describes the vehicle the agent delivers with
	vehicleType string
	// licenseNumber is the agent's driving license
	licenseNumber string
	// passwordHash is the opaque credential; empty for invited agents
	// until they claim their invite
	passwordHash string
	// inviteToken is the single-use onboarding token for invited agents
	inviteToken *string
	// inviteTokenExpiresAt bounds the invite token lifetime
	inviteTokenExpiresAt *time.Time
	// approval is the administrative lifecycle state
	approval ApprovalState
	// availability is the booking availability state
	availability AvailabilityState
	// createdAt is when the agent record was created
	createdAt time.Time
	// lastActiveAt orders the available-agent pool (most recent first)
	lastActiveAt time.Time
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a self-registered Agent awaiting approval.
//
// The password hash must already be produced by the auth collaborator; the
// domain treats it as opaque. The new agent enters PendingApproval/Offline and
// becomes assignable only after approval.
func NewAgent(id kernel.UUID, name, email, phone, vehicleType, licenseNumber, passwordHash string) (*Agent, error) {
	now := time.Now()
	a := &Agent{
		approval:     PendingApproval,
		availability: Offline,
		createdAt:    now,
		lastActiveAt: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setIdentity(name, email, phone, vehicleType, licenseNumber),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// NewInvitedAgent creates an admin-provisioned Agent that is usable
// immediately. Instead of a credential it carries a single-use invite token
// with an expiry; the agent sets its own password when claiming the invite.
func NewInvitedAgent(id kernel.UUID, name, email, phone, vehicleType, licenseNumber, inviteToken string, tokenExpiresAt time.Time) (*Agent, error) {
	now := time.Now()
	a := &Agent{
		approval:     Approved,
		availability: Available,
		createdAt:    now,
		lastActiveAt: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setIdentity(name, email, phone, vehicleType, licenseNumber),
		a.setInviteToken(inviteToken, tokenExpiresAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage.
// Unlike the creation constructors it accepts the full persisted state,
// including timestamps and whichever credential form the agent holds.
func RestoreAgent(
	id kernel.UUID,
	name, email, phone, vehicleType, licenseNumber, passwordHash string,
	inviteToken *string,
	inviteTokenExpiresAt *time.Time,
	approval ApprovalState,
	availability AvailabilityState,
	createdAt, lastActiveAt time.Time,
) (*Agent, error) {
	a := &Agent{
		passwordHash:         passwordHash,
		inviteToken:          inviteToken,
		inviteTokenExpiresAt: inviteTokenExpiresAt,
		createdAt:            createdAt,
		lastActiveAt:         lastActiveAt,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setIdentity(name, email, phone, vehicleType, licenseNumber),
		a.setApproval(approval),
		a.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks that the Agent was created through one of the constructors.
// The zero value of Agent is invalid and fails this check.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// ID returns the unique identifier of the agent.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the human-readable name of the agent.
func (a *Agent) Name() string {
	return a.name
}

// Email returns the unique email of the agent.
func (a *Agent) Email() string {
	return a.email
}

// Phone returns the contact number of the agent.
func (a *Agent) Phone() string {
	return a.phone
}

// VehicleType returns the vehicle description of the agent.
func (a *Agent) VehicleType() string {
	return a.vehicleType
}

// LicenseNumber returns the driving license of the agent.
func (a *Agent) LicenseNumber() string {
	return a.licenseNumber
}

// PasswordHash returns the opaque credential, empty for invited agents that
// have not claimed their invite yet.
func (a *Agent) PasswordHash() string {
	return a.passwordHash
}

// InviteToken returns the pending invite token, or nil when none is open.
func (a *Agent) InviteToken() *string {
	return a.inviteToken
}

// InviteTokenExpiresAt returns the invite token expiry, or nil when none is open.
func (a *Agent) InviteTokenExpiresAt() *time.Time {
	return a.inviteTokenExpiresAt
}

// Approval returns the administrative lifecycle state.
func (a *Agent) Approval() ApprovalState {
	return a.approval
}

// Availability returns the booking availability state.
func (a *Agent) Availability() AvailabilityState {
	return a.availability
}

// CreatedAt returns when the agent record was created.
func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

// LastActiveAt returns the last-active timestamp.
func (a *Agent) LastActiveAt() time.Time {
	return a.lastActiveAt
}

// IsAssignable reports whether the assignment policy may bind deliveries to
// this agent. Only the administrative Inactive state blocks assignment;
// a pending agent can still be manually assigned, matching the historical
// behavior of the booking path.
func (a *Agent) IsAssignable() bool {
	return a.approval != Inactive
}

// IsDispatchable reports whether the agent belongs in the available pool used
// by auto-assignment: approved and currently available.
func (a *Agent) IsDispatchable() bool {
	return a.approval == Approved && a.availability == Available
}

// Approve clears the agent for deliveries and makes it available.
// The transition is unconditional: re-approving an approved or inactive agent
// simply lands it in the same state.
func (a *Agent) Approve() {
	a.approval = Approved
	a.availability = Available
	a.Touch()
}

// MarkAvailable returns the agent to the available pool and refreshes the
// last-active timestamp. Called when a delivery completes or the agent is
// displaced by a reassignment.
func (a *Agent) MarkAvailable() {
	a.availability = Available
	a.Touch()
}

// ApplyStatusChange applies a parsed legacy status update to whichever
// orthogonal field it targets and refreshes the last-active timestamp.
// Setting approval to Approved also makes the agent available, because the
// historical ACTIVE status meant "bookable".
func (a *Agent) ApplyStatusChange(change StatusChange) error {
	if change.Approval != nil {
		if err := a.setApproval(*change.Approval); err != nil {
			return err
		}
		if *change.Approval == Approved {
			a.availability = Available
		}
	}
	if change.Availability != nil {
		if err := a.setAvailability(*change.Availability); err != nil {
			return err
		}
	}

	a.Touch()
	return nil
}

// ClaimInvite consumes the invite token and installs the agent's own
// credential. Fails when no invite is open or the token expired.
func (a *Agent) ClaimInvite(token, passwordHash string) error {
	if a.inviteToken == nil || a.inviteTokenExpiresAt == nil {
		return errs.NewValueIsInvalidError("no open invite for agent")
	}
	if time.Now().After(*a.inviteTokenExpiresAt) {
		return errs.NewValueIsInvalidError("invite token expired")
	}
	if *a.inviteToken != token {
		return errs.NewValueIsInvalidError("invite token mismatch")
	}
	if err := a.setPasswordHash(passwordHash); err != nil {
		return err
	}

	a.inviteToken = nil
	a.inviteTokenExpiresAt = nil
	a.Touch()
	return nil
}

// Touch refreshes the last-active timestamp. Every assignment, completion,
// and status change calls this; the available pool is ordered by it.
func (a *Agent) Touch() {
	a.lastActiveAt = time.Now()
}

// setID sets the agent's unique identifier with validation.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setIdentity sets the required identity fields with validation.
func (a *Agent) setIdentity(name, email, phone, vehicleType, licenseNumber string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if email == "" {
		return ErrEmailIsRequired
	}
	if phone == "" {
		return ErrPhoneIsRequired
	}
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	a.name = name
	a.email = email
	a.phone = phone
	a.vehicleType = vehicleType
	a.licenseNumber = licenseNumber
	return nil
}

// setPasswordHash sets the opaque credential with validation.
func (a *Agent) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrCredentialIsRequired
	}

	a.passwordHash = passwordHash
	return nil
}

// setInviteToken installs an open invite with its expiry.
func (a *Agent) setInviteToken(token string, expiresAt time.Time) error {
	if token == "" {
		return ErrInviteTokenIsRequired
	}

	a.inviteToken = &token
	a.inviteTokenExpiresAt = &expiresAt
	return nil
}

// setApproval sets the approval state with validation.
func (a *Agent) setApproval(state ApprovalState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	a.approval = state
	return nil
}

// setAvailability sets the availability state with validation.
func (a *Agent) setAvailability(state AvailabilityState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	a.availability = state
	return nil
}
