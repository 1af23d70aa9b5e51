package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestDeleteAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testAgent := newApprovedAgent(t, "alice")
	cmd, err := commands.NewDeleteAgentCommand(testAgent.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		agentRepo.On("Get", ctx, testAgent.ID()).Return(testAgent, nil).Once(),
		deliveryRepo.On("GetActiveByAgent", ctx, testAgent.ID()).Return([]*delivery.Delivery{}, nil).Once(),
		deliveryRepo.On("ClearAgent", ctx, testAgent.ID()).Return(nil).Once(),
		agentRepo.On("Delete", ctx, testAgent.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestDeleteAgentCommandHandler_Handle_ActiveDeliveries(t *testing.T) {
	ctx := t.Context()

	testAgent := newApprovedAgent(t, "alice")
	cmd, err := commands.NewDeleteAgentCommand(testAgent.ID())
	require.NoError(t, err)

	inFlight := newPendingDelivery(t)
	require.NoError(t, inFlight.Assign(testAgent.ID()))

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		agentRepo.On("Get", ctx, testAgent.ID()).Return(testAgent, nil).Once(),
		deliveryRepo.On("GetActiveByAgent", ctx, testAgent.ID()).
			Return([]*delivery.Delivery{inFlight}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAgentHasActiveDeliveries)
	deliveryRepo.AssertNotCalled(t, "ClearAgent", ctx, mock.Anything)
	agentRepo.AssertNotCalled(t, "Delete", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteAgentCommandHandler_Handle_AgentNotFound(t *testing.T) {
	ctx := t.Context()

	agentID := kernel.NewUUID()
	cmd, err := commands.NewDeleteAgentCommand(agentID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		agentRepo.On("Get", ctx, agentID).Return(nil, errs.NewObjectNotFoundError("agentId", agentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
