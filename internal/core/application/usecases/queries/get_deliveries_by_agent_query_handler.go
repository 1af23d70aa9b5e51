package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
)

// GetDeliveriesByAgentQueryHandler retrieves one agent's deliveries,
// optionally narrowed to the in-flight statuses.
type GetDeliveriesByAgentQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByAgentQueryHandler creates a handler for agent workload queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesByAgentQueryHandler(db *gorm.DB) GetDeliveriesByAgentQueryHandler {
	return GetDeliveriesByAgentQueryHandler{db: db}
}

// Handle executes the query to retrieve the agent's deliveries, newest first.
func (h GetDeliveriesByAgentQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByAgentQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE agent_id = ?`
	args := []any{query.AgentID().Bytes()}

	if query.ActiveOnly() {
		sql += ` AND status IN (?, ?, ?)`
		args = append(args,
			delivery.Assigned.String(),
			delivery.PickedUp.String(),
			delivery.InTransit.String(),
		)
	}

	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
