package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrInviteAgentCommandIsNotConstructed = errors.New(
	"InviteAgentCommand must be created via NewInviteAgentCommand constructor",
)

// InviteAgentCommand represents the admin path for provisioning an agent.
// The account is approved and available immediately; instead of a password it
// receives a single-use invite token the agent claims later.
type InviteAgentCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	vehicleType   string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewInviteAgentCommand creates an admin provisioning command.
// All identity fields are required; credentials are handled by the invite flow.
func NewInviteAgentCommand(name, email, phone, vehicleType, licenseNumber string) (InviteAgentCommand, error) {
	cmd := InviteAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdentity(name, email, phone, vehicleType, licenseNumber); err != nil {
		return InviteAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInviteAgentCommandIsNotConstructed if validation fails.
func (c InviteAgentCommand) Validate() error {
	return c.guard.Validate(ErrInviteAgentCommandIsNotConstructed)
}

// Name returns the agent's display name.
func (c InviteAgentCommand) Name() string {
	return c.name
}

// Email returns the unique email the agent is invited with.
func (c InviteAgentCommand) Email() string {
	return c.email
}

// Phone returns the agent's contact number.
func (c InviteAgentCommand) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle the agent delivers with.
func (c InviteAgentCommand) VehicleType() string {
	return c.vehicleType
}

// LicenseNumber returns the agent's driving license.
func (c InviteAgentCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *InviteAgentCommand) setIdentity(name, email, phone, vehicleType, licenseNumber string) error {
	if name == "" {
		return ErrAgentNameIsEmpty
	}
	if email == "" {
		return ErrAgentEmailIsEmpty
	}
	if phone == "" {
		return ErrAgentPhoneIsEmpty
	}
	if vehicleType == "" {
		return ErrVehicleTypeIsEmpty
	}
	if licenseNumber == "" {
		return ErrLicenseNumberIsEmpty
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.vehicleType = vehicleType
	c.licenseNumber = licenseNumber
	return nil
}
