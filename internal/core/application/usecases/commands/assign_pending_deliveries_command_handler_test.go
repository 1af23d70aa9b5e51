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
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

func TestAssignPendingDeliveriesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingDeliveriesCommand()

	testDelivery := newPendingDelivery(t)
	first := newApprovedAgent(t, "first")
	second := newApprovedAgent(t, "second")
	pool := []*agent.Agent{first, second}

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("GetFirstPending", ctx).Return(testDelivery, nil).Once(),
		agentRepo.On("GetAllAvailable", ctx).Return(pool, nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		agentRepo.On("Update", ctx, first).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.TopicDeliveryEvents, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryAssigned")).Return(nil).Once()
	publisher.On("Publish", ctx, events.TopicStatusUpdates, testDelivery.ID().String(),
		mock.AnythingOfType("events.DeliveryAssigned")).Return(nil).Once()

	handler := commands.NewAssignPendingDeliveriesCommandHandler(factory, publisher)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, assigned.Status())
	require.NotNil(t, assigned.AgentID())
	assert.True(t, assigned.AgentID().IsEqual(first.ID()), "first agent of the pool wins")

	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignPendingDeliveriesCommandHandler_Handle_NoPendingDeliveries(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingDeliveriesCommand()

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("GetFirstPending", ctx).
			Return(nil, errs.NewObjectNotFoundError("delivery", "first pending")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPendingDeliveriesCommandHandler(factory, nil)
	assigned, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingDeliveries)
	assert.Nil(t, assigned)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignPendingDeliveriesCommandHandler_Handle_NoAvailableAgents(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingDeliveriesCommand()

	testDelivery := newPendingDelivery(t)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		deliveryRepo.On("GetFirstPending", ctx).Return(testDelivery, nil).Once(),
		agentRepo.On("GetAllAvailable", ctx).Return([]*agent.Agent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPendingDeliveriesCommandHandler(factory, nil)
	assigned, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoAvailableAgents)
	assert.Nil(t, assigned)
	assert.Equal(t, delivery.Pending, testDelivery.Status(), "delivery stays pending for the next sweep")
	uow.AssertNotCalled(t, "Commit", ctx)
}
