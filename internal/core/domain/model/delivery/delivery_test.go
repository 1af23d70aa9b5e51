package delivery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// Test helper functions.
func createPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), 100, 42, 7, "12 Baker Street", "221B Baker Street", 35)
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}

func TestNewDelivery(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create pending delivery with valid parameters", func(t *testing.T) {
		d, err := delivery.NewDelivery(validID, 100, 42, 7, "12 Baker Street", "221B Baker Street", 35)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.Equal(t, int64(100), d.OrderID())
		assert.Equal(t, int64(42), d.RestaurantID())
		assert.Equal(t, int64(7), d.CustomerID())
		assert.Equal(t, "12 Baker Street", d.PickupAddress())
		assert.Equal(t, "221B Baker Street", d.DeliveryAddress())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, float64(35), d.EtaMinutes())
		assert.Nil(t, d.AgentID())
		assert.False(t, d.CreatedAt().IsZero())
		assert.Nil(t, d.AssignedAt())
		assert.Nil(t, d.PickedUpAt())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := delivery.NewDelivery(invalidID, 100, 42, 7, "a", "b", 35)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should return error for invalid parties", func(t *testing.T) {
		testCases := []struct {
			name                             string
			orderID, restaurantID, customerID int64
			field                            string
		}{
			{"zero order id", 0, 42, 7, "order id"},
			{"negative order id", -1, 42, 7, "order id"},
			{"zero restaurant id", 100, 0, 7, "restaurant id"},
			{"zero customer id", 100, 42, 0, "customer id"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d, err := delivery.NewDelivery(kernel.NewUUID(), tc.orderID, tc.restaurantID, tc.customerID, "a", "b", 35)

				require.Error(t, err)
				assert.Nil(t, d)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})

	t.Run("should return error for empty addresses", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), 100, 42, 7, "", "221B Baker Street", 35)
		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "pickup address")

		d, err = delivery.NewDelivery(kernel.NewUUID(), 100, 42, 7, "12 Baker Street", "", 35)
		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var d delivery.Delivery
		require.Error(t, d.Validate())
	})
}

func TestDeliveryAssign(t *testing.T) {
	t.Run("should bind agent and stamp assignedAt", func(t *testing.T) {
		d := createPendingDelivery(t)
		agentID := kernel.NewUUID()

		err := d.Assign(agentID)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.AgentID())
		assert.True(t, d.AgentID().IsEqual(agentID))
		assert.NotNil(t, d.AssignedAt())
	})

	t.Run("should allow rebinding to a different agent", func(t *testing.T) {
		d := createPendingDelivery(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, d.Assign(first))

		err := d.Assign(second)

		require.NoError(t, err)
		assert.True(t, d.AgentID().IsEqual(second))
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should reject invalid agent id", func(t *testing.T) {
		d := createPendingDelivery(t)
		var invalidID kernel.UUID

		err := d.Assign(invalidID)

		require.Error(t, err)
		assert.Nil(t, d.AgentID())
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("should reject assignment on terminal delivery", func(t *testing.T) {
		d := createPendingDelivery(t)
		require.NoError(t, d.ChangeStatus(delivery.Cancelled))

		err := d.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
	})
}

func TestDeliveryChangeStatus(t *testing.T) {
	t.Run("should stamp pickedUpAt on PICKED_UP", func(t *testing.T) {
		d := createPendingDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))

		err := d.ChangeStatus(delivery.PickedUp)

		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, d.Status())
		assert.NotNil(t, d.PickedUpAt())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("should stamp deliveredAt on DELIVERED", func(t *testing.T) {
		d := createPendingDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.ChangeStatus(delivery.PickedUp))
		require.NoError(t, d.ChangeStatus(delivery.InTransit))

		err := d.ChangeStatus(delivery.Delivered)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.NotNil(t, d.DeliveredAt())
	})

	t.Run("should allow skipping intermediate states", func(t *testing.T) {
		d := createPendingDelivery(t)

		err := d.ChangeStatus(delivery.Delivered)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.NotNil(t, d.DeliveredAt())
		assert.Nil(t, d.PickedUpAt())
	})

	t.Run("should keep agent reference after delivery", func(t *testing.T) {
		d := createPendingDelivery(t)
		agentID := kernel.NewUUID()
		require.NoError(t, d.Assign(agentID))

		require.NoError(t, d.ChangeStatus(delivery.Delivered))

		require.NotNil(t, d.AgentID())
		assert.True(t, d.AgentID().IsEqual(agentID))
	})

	t.Run("should reject changes on terminal delivery", func(t *testing.T) {
		for _, terminal := range []delivery.Status{delivery.Delivered, delivery.Cancelled} {
			d := createPendingDelivery(t)
			require.NoError(t, d.ChangeStatus(terminal))

			err := d.ChangeStatus(delivery.InTransit)

			require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
			assert.Equal(t, terminal, d.Status())
		}
	})

	t.Run("should reject invalid status value", func(t *testing.T) {
		d := createPendingDelivery(t)

		err := d.ChangeStatus(delivery.Status(99))

		require.Error(t, err)
		assert.Equal(t, delivery.Pending, d.Status())
	})
}

func TestDeliveryUpdateDetails(t *testing.T) {
	t.Run("should rewrite only present fields", func(t *testing.T) {
		d := createPendingDelivery(t)
		newOrderID := int64(200)
		newAddress := "742 Evergreen Terrace"

		err := d.UpdateDetails(&newOrderID, nil, nil, nil, &newAddress)

		require.NoError(t, err)
		assert.Equal(t, int64(200), d.OrderID())
		assert.Equal(t, int64(42), d.RestaurantID())
		assert.Equal(t, "12 Baker Street", d.PickupAddress())
		assert.Equal(t, "742 Evergreen Terrace", d.DeliveryAddress())
	})

	t.Run("should reject invalid replacement values", func(t *testing.T) {
		d := createPendingDelivery(t)
		badOrderID := int64(0)

		err := d.UpdateDetails(&badOrderID, nil, nil, nil, nil)

		require.Error(t, err)
		assert.Equal(t, int64(100), d.OrderID(), "failed update must not change the aggregate")
	})

	t.Run("all nil pointers leave the delivery untouched", func(t *testing.T) {
		d := createPendingDelivery(t)

		err := d.UpdateDetails(nil, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(100), d.OrderID())
	})
}

func TestDeliverySetNotes(t *testing.T) {
	d := createPendingDelivery(t)

	d.SetNotes("leave at the door")
	assert.Equal(t, "leave at the door", d.Notes())

	d.SetNotes("")
	assert.Empty(t, d.Notes())
}

func TestStatus(t *testing.T) {
	t.Run("wire names round trip", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.Pending, delivery.Assigned, delivery.PickedUp,
			delivery.InTransit, delivery.Delivered, delivery.Cancelled,
		} {
			parsed, err := delivery.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown wire name is rejected", func(t *testing.T) {
		_, err := delivery.ParseStatus("LOST")
		require.Error(t, err)
	})

	t.Run("terminal and active classification", func(t *testing.T) {
		assert.True(t, delivery.Delivered.IsTerminal())
		assert.True(t, delivery.Cancelled.IsTerminal())
		assert.False(t, delivery.Pending.IsTerminal())

		assert.True(t, delivery.Assigned.IsActive())
		assert.True(t, delivery.PickedUp.IsActive())
		assert.True(t, delivery.InTransit.IsActive())
		assert.False(t, delivery.Pending.IsActive())
		assert.False(t, delivery.Delivered.IsActive())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore full persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		agentID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)
		assignedAt := time.Now().Add(-30 * time.Minute)

		d, err := delivery.RestoreDelivery(id, 100, 42, 7, "a", "b",
			delivery.Assigned, 35, &agentID, "note", createdAt, &assignedAt, nil, nil)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.AgentID())
		assert.True(t, d.AgentID().IsEqual(agentID))
		assert.Equal(t, "note", d.Notes())
		assert.True(t, d.CreatedAt().Equal(createdAt))
		require.NotNil(t, d.AssignedAt())
		assert.True(t, d.AssignedAt().Equal(assignedAt))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), 100, 42, 7, "a", "b",
			delivery.Status(99), 35, nil, "", time.Now(), nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}
