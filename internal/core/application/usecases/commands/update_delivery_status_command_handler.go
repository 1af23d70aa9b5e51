package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler applies lifecycle transitions with their
// side effects: PICKED_UP stamps the pickup time, DELIVERED stamps the
// delivery time and returns the bound agent to the available pool without
// clearing the delivery's agent reference. Terminal states reject any further
// change with delivery.ErrDeliveryCompleted.
//
// After commit the handler emits DeliveryStatusUpdated on every change, plus
// DeliveryCompleted for DELIVERED with a known agent and DeliveryCancelled
// (carrying the reason) for CANCELLED.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status transitions.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// Loads the delivery, applies the transition through the aggregate, releases
// the agent on DELIVERED, and persists everything in one transaction. Events
// go out only after the commit succeeded. Returns the updated delivery.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*delivery.Delivery, error) {
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

	var boundAgent *agent.Agent
	if id := d.AgentID(); id != nil {
		boundAgent, err = agentRepo.Get(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	if err = d.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if cmd.Status() == delivery.Delivered && boundAgent != nil {
		boundAgent.MarkAvailable()
		if err = agentRepo.Update(ctx, boundAgent); err != nil {
			return nil, err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, events.NewDeliveryStatusUpdated(d, boundAgent))

	switch cmd.Status() {
	case delivery.Delivered:
		if boundAgent != nil {
			publishAll(ctx, h.publisher, events.NewDeliveryCompleted(d, boundAgent))
		}
	case delivery.Cancelled:
		publishAll(ctx, h.publisher, events.NewDeliveryCancelled(d, cmd.Reason()))
	}

	return d, nil
}
