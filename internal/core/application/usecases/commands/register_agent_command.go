package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
	ErrAgentNameIsEmpty     = errors.New("agent name is required")
	ErrAgentEmailIsEmpty    = errors.New("agent email is required")
	ErrAgentPhoneIsEmpty    = errors.New("agent phone is required")
	ErrVehicleTypeIsEmpty   = errors.New("vehicle type is required")
	ErrLicenseNumberIsEmpty = errors.New("license number is required")
	ErrPasswordIsEmpty      = errors.New("password is required")
)

// RegisterAgentCommand represents a self-registration request from a new
// delivery agent. The account lands in the approval queue and cannot take
// deliveries until an admin approves it.
//
// Example:
//
//	cmd, err := NewRegisterAgentCommand("Jane Smith", "jane@example.com",
//	    "+15550100", "bike", "DL-9912", "s3cret")
//	if err != nil {
//	    return err
//	}
//	registered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
//	    log.Println("Email taken")
//	}
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	vehicleType   string
	licenseNumber string
	password      string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a self-registration command.
// All fields are required; the password is hashed by the handler, never stored
// on the command beyond the call.
func NewRegisterAgentCommand(name, email, phone, vehicleType, licenseNumber, password string) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentity(name, email, phone, vehicleType, licenseNumber),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAgentCommandIsNotConstructed if validation fails.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Email returns the unique email the agent registers with.
func (c RegisterAgentCommand) Email() string {
	return c.email
}

// Phone returns the agent's contact number.
func (c RegisterAgentCommand) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle the agent delivers with.
func (c RegisterAgentCommand) VehicleType() string {
	return c.vehicleType
}

// LicenseNumber returns the agent's driving license.
func (c RegisterAgentCommand) LicenseNumber() string {
	return c.licenseNumber
}

// Password returns the plaintext password supplied by the agent.
func (c RegisterAgentCommand) Password() string {
	return c.password
}

func (c *RegisterAgentCommand) setIdentity(name, email, phone, vehicleType, licenseNumber string) error {
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

func (c *RegisterAgentCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsEmpty
	}

	c.password = password
	return nil
}
