package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredReleasesAgent(t *testing.T) {
	ctx := t.Context()

	boundAgent := newApprovedAgent(t, "alice")
	change, err := agent.ParseStatusChange("BUSY")
	require.NoError(t, err)
	require.NoError(t, boundAgent.ApplyStatusChange(change))

	testDelivery := newPendingDelivery(t)
	require.NoError(t, testDelivery.Assign(boundAgent.ID()))
	require.NoError(t, testDelivery.ChangeStatus(delivery.InTransit))

	cmd, err := commands.NewUpdateDeliveryStatusCommand(testDelivery.ID(), "DELIVERED", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		agentRepo.On("Get", ctx, boundAgent.ID()).Return(boundAgent, nil).Once(),
		agentRepo.On("Update", ctx, boundAgent).Return(nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.TopicStatusUpdates, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryStatusUpdated")).Return(nil).Once()
	publisher.On("Publish", ctx, events.TopicDeliveryEvents, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryCompleted")).Return(nil).Once()
	publisher.On("Publish", ctx, events.TopicStatusUpdates, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryCompleted")).Return(nil).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, updated.Status())
	assert.NotNil(t, updated.DeliveredAt())
	require.NotNil(t, updated.AgentID(), "agent reference survives completion")
	assert.True(t, updated.AgentID().IsEqual(boundAgent.ID()))
	assert.Equal(t, agent.Available, boundAgent.Availability(), "agent returns to the pool")

	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CancelledPublishesReason(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(testDelivery.ID(), "CANCELLED", "customer unavailable")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.TopicStatusUpdates, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryStatusUpdated")).Return(nil).Once()
	publisher.On("Publish", ctx, events.TopicDeliveryEvents, testDelivery.ID().String(),
		mock.MatchedBy(func(e events.DeliveryCancelled) bool {
			return e.Metadata.Reason == "customer unavailable"
		})).Return(nil).Once()
	publisher.On("Publish", ctx, events.TopicStatusUpdates, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryCancelled")).Return(nil).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, updated.Status())
	publisher.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_TerminalDeliveryRejected(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t)
	require.NoError(t, testDelivery.ChangeStatus(delivery.Cancelled))

	cmd, err := commands.NewUpdateDeliveryStatusCommand(testDelivery.ID(), "IN_TRANSIT", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	updated, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
	assert.Nil(t, updated)
	uow.AssertNotCalled(t, "Commit", ctx)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_UnassignedStatusChange(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(testDelivery.ID(), "PICKED_UP", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, updated.Status())
	assert.NotNil(t, updated.PickedUpAt())
	agentRepo.AssertNotCalled(t, "Get", ctx, mock.Anything)
	agentRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateDeliveryStatusCommand_InvalidStatus(t *testing.T) {
	testDelivery := newPendingDelivery(t)

	_, err := commands.NewUpdateDeliveryStatusCommand(testDelivery.ID(), "LOST", "")

	require.Error(t, err)
}
