package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
)

// GetPendingDeliveriesQueryHandler retrieves the unassigned waiting queue.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for the waiting queue.
// Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve PENDING deliveries, oldest first.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at
	`, delivery.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
