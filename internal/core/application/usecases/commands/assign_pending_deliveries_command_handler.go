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

var ErrNoPendingDeliveries = errors.New("no pending deliveries found")

// AssignPendingDeliveriesCommandHandler runs one sweep of the background
// assignment loop. Picks the oldest PENDING delivery and the available agent
// pool, and binds them through the dispatch policy within one transaction.
//
// Example:
//
//	handler := NewAssignPendingDeliveriesCommandHandler(uowFactory, publisher)
//	cmd := NewAssignPendingDeliveriesCommand()
//	_, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, commands.ErrNoPendingDeliveries):
//	    log.Println("Nothing waiting")
//	case errors.Is(err, services.ErrNoAvailableAgents):
//	    log.Println("Nobody to deliver")
//	case err != nil:
//	    log.Printf("Sweep failed: %v", err)
//	}
type AssignPendingDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignPendingDeliveriesCommandHandler creates a handler for the
// background assignment sweep.
func NewAssignPendingDeliveriesCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) AssignPendingDeliveriesCommandHandler {
	return AssignPendingDeliveriesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one sweep of the assignment loop.
// Returns ErrNoPendingDeliveries when nothing is waiting and
// services.ErrNoAvailableAgents when the pool is empty; callers treat both
// as "nothing to do" rather than failures. DeliveryAssigned is published
// after the commit succeeded.
func (h AssignPendingDeliveriesCommandHandler) Handle(ctx context.Context, cmd AssignPendingDeliveriesCommand) (*delivery.Delivery, error) {
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

	d, err := deliveryRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingDeliveries
	}
	if err != nil {
		return nil, err
	}

	pool, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
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
