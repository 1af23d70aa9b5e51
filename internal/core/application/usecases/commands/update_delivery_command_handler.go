package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// UpdateDeliveryCommandHandler applies back-office corrections to delivery
// records. No events are emitted; field corrections are not lifecycle facts.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery field updates.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partial update command.
// Loads the delivery, rewrites the present fields through the aggregate, and
// persists the result. Returns the updated delivery.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*delivery.Delivery, error) {
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

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.UpdateDetails(
		cmd.OrderID(), cmd.RestaurantID(), cmd.CustomerID(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
	); err != nil {
		return nil, err
	}

	if notes := cmd.Notes(); notes != nil {
		d.SetNotes(*notes)
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
