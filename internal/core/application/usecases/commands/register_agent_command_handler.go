package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the registration email collides
// with an existing agent. The check runs before any write, so a duplicate
// registration leaves no trace.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterAgentCommandHandler handles self-registration of delivery agents.
// Hashes the password with bcrypt and creates the account in the approval
// queue (PENDING_APPROVAL, OFFLINE).
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent self-registration.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects duplicate emails with ErrEmailAlreadyRegistered before writing
// anything, then persists the new pending agent. Returns the created agent.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	_, err = agentRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	a, err := agent.NewAgent(
		kernel.NewUUID(),
		cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.VehicleType(), cmd.LicenseNumber(),
		string(hash),
	)
	if err != nil {
		return nil, err
	}

	if err = agentRepo.Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
