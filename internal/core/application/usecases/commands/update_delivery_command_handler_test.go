package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestUpdateDeliveryCommandHandler_Handle_PartialUpdate(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t)
	cmd, err := commands.NewUpdateDeliveryCommand(
		testDelivery.ID(),
		nil, nil, int64Ptr(9),
		strPtr("99 New Street"), nil, strPtr("leave at door"),
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(9), updated.CustomerID())
	assert.Equal(t, "99 New Street", updated.PickupAddress())
	assert.Equal(t, int64(100), updated.OrderID(), "absent fields keep their values")
	assert.Equal(t, "221B Baker Street", updated.DeliveryAddress())
	assert.Equal(t, "leave at door", updated.Notes())

	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestUpdateDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, int64Ptr(101), nil, nil, nil, nil, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("deliveryId", deliveryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDeliveryCommandHandler_Handle_InvalidField(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t)
	cmd, err := commands.NewUpdateDeliveryCommand(
		testDelivery.ID(), int64Ptr(-5), nil, nil, nil, nil, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
