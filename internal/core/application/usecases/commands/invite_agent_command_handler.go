package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// inviteTokenTTL bounds how long an unclaimed invite stays valid.
const inviteTokenTTL = 48 * time.Hour

// InviteAgentCommandHandler handles admin provisioning of agents.
// The created account is approved and available immediately and carries a
// random single-use invite token instead of a credential; the agent sets its
// own password when claiming the invite.
type InviteAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewInviteAgentCommandHandler creates a handler for admin agent provisioning.
func NewInviteAgentCommandHandler(uowFactory AgentUoWFactory) InviteAgentCommandHandler {
	return InviteAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invite command.
// Rejects duplicate emails with ErrEmailAlreadyRegistered before writing
// anything, generates the invite token, and persists the approved agent.
// Returns the created agent; the open invite token is readable from it for
// the caller's response.
func (h InviteAgentCommandHandler) Handle(ctx context.Context, cmd InviteAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	token, err := newInviteToken()
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

	a, err := agent.NewInvitedAgent(
		kernel.NewUUID(),
		cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.VehicleType(), cmd.LicenseNumber(),
		token, time.Now().Add(inviteTokenTTL),
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

// newInviteToken produces a 256-bit random token in hex.
func newInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
