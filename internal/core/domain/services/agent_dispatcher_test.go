package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// Test helper functions.
func createPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), 100, 42, 7, "12 Baker Street", "221B Baker Street", 35)
	require.NoError(t, err)
	return d
}

func createApprovedAgent(t *testing.T, name string) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), name, name+"@example.com", "+15550100", "BIKE", "LIC-42", "hash")
	require.NoError(t, err)
	a.Approve()
	return a
}

func TestDispatch(t *testing.T) {
	dispatcher := services.NewAgentDispatcher()

	t.Run("should pick the first agent of the pool", func(t *testing.T) {
		d := createPendingDelivery(t)
		first := createApprovedAgent(t, "first")
		second := createApprovedAgent(t, "second")

		selected, err := dispatcher.Dispatch(d, []*agent.Agent{first, second})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(first))
		require.NotNil(t, d.AgentID())
		assert.True(t, d.AgentID().IsEqual(first.ID()))
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should return ErrNoAvailableAgents for empty pool", func(t *testing.T) {
		d := createPendingDelivery(t)

		selected, err := dispatcher.Dispatch(d, nil)

		require.ErrorIs(t, err, services.ErrNoAvailableAgents)
		assert.Nil(t, selected)
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("should reject unconstructed delivery", func(t *testing.T) {
		var d delivery.Delivery
		pool := []*agent.Agent{createApprovedAgent(t, "first")}

		_, err := dispatcher.Dispatch(&d, pool)

		require.Error(t, err)
	})

	t.Run("is deterministic for a fixed pool", func(t *testing.T) {
		first := createApprovedAgent(t, "first")
		second := createApprovedAgent(t, "second")
		pool := []*agent.Agent{first, second}

		for i := 0; i < 3; i++ {
			d := createPendingDelivery(t)
			selected, err := dispatcher.Dispatch(d, pool)
			require.NoError(t, err)
			assert.True(t, selected.IsEqual(first))
		}
	})
}

func TestBind(t *testing.T) {
	dispatcher := services.NewAgentDispatcher()

	t.Run("should bind agent without locking it", func(t *testing.T) {
		d := createPendingDelivery(t)
		a := createApprovedAgent(t, "alice")
		before := a.LastActiveAt()

		err := dispatcher.Bind(d, a)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Equal(t, agent.Available, a.Availability(), "assignment must not flip the agent to busy")
		assert.False(t, a.LastActiveAt().Before(before))
	})

	t.Run("should bind several deliveries to one agent", func(t *testing.T) {
		a := createApprovedAgent(t, "alice")

		for i := 0; i < 3; i++ {
			d := createPendingDelivery(t)
			require.NoError(t, dispatcher.Bind(d, a))
			assert.True(t, d.AgentID().IsEqual(a.ID()))
		}
	})

	t.Run("should allow binding a pending-approval agent", func(t *testing.T) {
		d := createPendingDelivery(t)
		a, err := agent.NewAgent(kernel.NewUUID(), "bob", "bob@example.com", "+15550101", "CAR", "LIC-43", "hash")
		require.NoError(t, err)

		err = dispatcher.Bind(d, a)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should reject inactive agent", func(t *testing.T) {
		d := createPendingDelivery(t)
		a := createApprovedAgent(t, "alice")
		change, err := agent.ParseStatusChange("INACTIVE")
		require.NoError(t, err)
		require.NoError(t, a.ApplyStatusChange(change))

		err = dispatcher.Bind(d, a)

		require.ErrorIs(t, err, services.ErrAgentInactive)
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.AgentID())
	})

	t.Run("should reject terminal delivery", func(t *testing.T) {
		d := createPendingDelivery(t)
		require.NoError(t, d.ChangeStatus(delivery.Cancelled))
		a := createApprovedAgent(t, "alice")

		err := dispatcher.Bind(d, a)

		require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
	})
}
