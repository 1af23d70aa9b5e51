package commands

import (
	"context"
	"errors"
)

// ErrAgentHasActiveDeliveries is returned when deleting an agent that still
// has in-flight deliveries bound to it.
var ErrAgentHasActiveDeliveries = errors.New("agent has active deliveries and cannot be deleted")

// DeleteAgentCommandHandler removes agents from the directory.
// Deletion is refused while the agent has in-flight deliveries; historical
// deliveries survive with their agent reference nulled, all within one
// transaction.
type DeleteAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteAgentCommandHandler creates a handler for agent deletion.
// Requires a UoWFactory covering both aggregates, because the delivery history
// is rewritten in the same transaction as the delete.
func NewDeleteAgentCommandHandler(uowFactory UoWFactory) DeleteAgentCommandHandler {
	return DeleteAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Verifies the agent exists, refuses deletion while ASSIGNED, PICKED_UP or
// IN_TRANSIT deliveries reference it, then nulls the agent reference on the
// delivery history and deletes the record atomically.
func (h DeleteAgentCommandHandler) Handle(ctx context.Context, cmd DeleteAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	deliveryRepo := uow.DeliveryRepository()

	a, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	active, err := deliveryRepo.GetActiveByAgent(ctx, a.ID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return ErrAgentHasActiveDeliveries
	}

	if err = deliveryRepo.ClearAgent(ctx, a.ID()); err != nil {
		return err
	}

	if err = agentRepo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
