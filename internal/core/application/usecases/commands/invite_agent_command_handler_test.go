package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/pkg/errs"
)

func TestInviteAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewInviteAgentCommand(
		"Alice", "alice@example.com", "+15550100", "BIKE", "LIC-42")
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "alice@example.com")).Once(),
		agentRepo.On("Add", ctx, mock.MatchedBy(func(a *agent.Agent) bool {
			return a.Approval() == agent.Approved && a.Availability() == agent.Available
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInviteAgentCommandHandler(factory)
	invited, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, invited)
	require.NotNil(t, invited.InviteToken())
	assert.Len(t, *invited.InviteToken(), 64, "hex-encoded 256-bit token")
	require.NotNil(t, invited.InviteTokenExpiresAt())
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), *invited.InviteTokenExpiresAt(), time.Minute)
	assert.Empty(t, invited.PasswordHash(), "no credential until the invite is claimed")

	uow.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
}

func TestInviteAgentCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewInviteAgentCommand(
		"Alice", "alice@example.com", "+15550100", "BIKE", "LIC-42")
	require.NoError(t, err)

	existing := newApprovedAgent(t, "alice")

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInviteAgentCommandHandler(factory)
	invited, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	assert.Nil(t, invited)
	agentRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
