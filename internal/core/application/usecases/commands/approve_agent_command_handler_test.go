package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestApproveAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pendingAgent := newPendingAgent(t, "alice")
	cmd, err := commands.NewApproveAgentCommand(pendingAgent.ID())
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", ctx, pendingAgent.ID()).Return(pendingAgent, nil).Once(),
		agentRepo.On("Update", ctx, pendingAgent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveAgentCommandHandler(factory)
	approved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, agent.Approved, approved.Approval())
	assert.Equal(t, agent.Available, approved.Availability())
	assert.True(t, approved.IsDispatchable())

	uow.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
}

func TestApproveAgentCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()

	approvedAgent := newApprovedAgent(t, "alice")
	cmd, err := commands.NewApproveAgentCommand(approvedAgent.ID())
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", ctx, approvedAgent.ID()).Return(approvedAgent, nil).Once(),
		agentRepo.On("Update", ctx, approvedAgent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveAgentCommandHandler(factory)
	again, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, agent.Approved, again.Approval())
	assert.Equal(t, agent.Available, again.Availability())
}

func TestApproveAgentCommandHandler_Handle_AgentNotFound(t *testing.T) {
	ctx := t.Context()

	agentID := kernel.NewUUID()
	cmd, err := commands.NewApproveAgentCommand(agentID)
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", ctx, agentID).Return(nil, errs.NewObjectNotFoundError("agentId", agentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveAgentCommandHandler(factory)
	approved, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, approved)
	uow.AssertNotCalled(t, "Commit", ctx)
}
