package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery fulfilling a given order.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)

	// GetAllByAgent retrieves every delivery ever bound to the agent,
	// including completed and cancelled history.
	GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*delivery.Delivery, error)

	// GetActiveByAgent retrieves the agent's in-flight deliveries
	// (ASSIGNED, PICKED_UP, IN_TRANSIT). Used by the deletion guard.
	GetActiveByAgent(ctx context.Context, agentID kernel.UUID) ([]*delivery.Delivery, error)

	// GetFirstPending retrieves the oldest PENDING delivery, the one the
	// background sweep assigns next.
	GetFirstPending(ctx context.Context) (*delivery.Delivery, error)

	// ClearAgent nulls the agent reference on all of the agent's
	// deliveries. Called before deleting an agent with history.
	ClearAgent(ctx context.Context, agentID kernel.UUID) error
}
