package commands

import (
	"context"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for opening delivery
// records. Computes the ETA once at creation time and emits DeliveryCreated
// after the record is committed.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, estimator, publisher)
//	cmd, _ := NewCreateDeliveryCommand(kernel.NewUUID(), 42, 7, 1001, "12 Baker St", "221B Baker St")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// created is PENDING and carries the recorded ETA
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	estimator  ports.EtaEstimator
	publisher  ports.EventPublisher
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a DeliveryUoWFactory for persistence, an EtaEstimator for the
// creation-time estimate, and an EventPublisher for the post-commit event.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	estimator ports.EtaEstimator,
	publisher ports.EventPublisher,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		publisher:  publisher,
	}
}

// Handle processes the delivery creation command.
// Creates the aggregate in PENDING status with the estimator's ETA, persists it
// transactionally, and publishes DeliveryCreated once the commit succeeded.
// Returns the created aggregate for the caller's response.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	eta := h.estimator.EstimateMinutes(cmd.PickupAddress(), cmd.DeliveryAddress())

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.OrderID(), cmd.RestaurantID(), cmd.CustomerID(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		eta,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, events.NewDeliveryCreated(d))

	return d, nil
}
