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

// AssignAgentCommandHandler orchestrates manual assignment of an agent to a
// delivery. On reassignment the displaced agent is returned to the available
// pool; the new agent's availability is left untouched because agents are not
// locked while delivering.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAssignAgentCommand(deliveryID, agentID)
//	assigned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Delivery or agent does not exist")
//	case errors.Is(err, services.ErrAgentInactive):
//	    log.Println("Agent is deactivated")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignAgentCommandHandler creates a handler for manual assignment.
// Requires a UoWFactory covering both aggregates and an EventPublisher for the
// post-commit DeliveryAssigned event.
func NewAssignAgentCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the manual assignment command.
// Loads the delivery and the agent, releases a displaced agent on
// reassignment, binds the new agent through the dispatch policy, and persists
// both aggregates in one transaction. DeliveryAssigned is published only after
// the commit succeeded. Returns the assigned delivery.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*delivery.Delivery, error) {
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

	nextAgent, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if prior := d.AgentID(); prior != nil && !prior.IsEqual(nextAgent.ID()) {
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

	if err = services.NewAgentDispatcher().Bind(d, nextAgent); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = agentRepo.Update(ctx, nextAgent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, events.NewDeliveryAssigned(d, nextAgent))

	return d, nil
}
