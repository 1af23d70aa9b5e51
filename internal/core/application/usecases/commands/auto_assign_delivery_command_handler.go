package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AutoAssignDeliveryCommandHandler assigns a delivery to the first entry of
// the available pool. The pool ordering (most recently active first) is owned
// by the agent repository, so for a fixed pool state the outcome is
// deterministic.
//
// Example:
//
//	handler := NewAutoAssignDeliveryCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAutoAssignDeliveryCommand(deliveryID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoAvailableAgents) {
//	    log.Println("Nobody to deliver right now")
//	}
type AutoAssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAutoAssignDeliveryCommandHandler creates a handler for automatic assignment.
func NewAutoAssignDeliveryCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AutoAssignDeliveryCommandHandler {
	return AutoAssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the auto-assignment command.
// Loads the delivery and the available pool, releases a displaced agent on
// reassignment, and lets the dispatch policy pick the winner. Returns
// services.ErrNoAvailableAgents when the pool is empty. DeliveryAssigned is
// published after commit.
func (h AutoAssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AutoAssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	agentRepo := uow.AgentRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	pool, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if prior := d.AgentID(); prior != nil {
		priorAgent, getErr := agentRepo.Get(ctx, *prior)
		switch {
		case getErr == nil:
			priorAgent.MarkAvailable()
			if err = agentRepo.Update(ctx, priorAgent); err != nil {
				return nil, err
			}
		case !errors.Is(getErr, errs.ErrObjectNotFound):
			return nil, getErr
		}
	}

	assignedAgent, err := services.NewAgentDispatcher().Dispatch(d, pool)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = agentRepo.Update(ctx, assignedAgent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, events.NewDeliveryAssigned(d, assignedAgent))

	return d, nil
}
