package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/agent"
)

// GetAvailableAgentsQueryHandler retrieves the bookable agent pool.
// The last_active_at DESC ordering is part of the behavioral contract:
// auto-assignment always takes the first entry of this result.
type GetAvailableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableAgentsQueryHandler creates a handler for the available pool.
// Requires a GORM database connection for query execution.
func NewGetAvailableAgentsQueryHandler(db *gorm.DB) GetAvailableAgentsQueryHandler {
	return GetAvailableAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve approved, available agents,
// most recently active first.
func (h GetAvailableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+agentColumns+`
		FROM agents
		WHERE approval = ? AND availability = ?
		ORDER BY last_active_at DESC
	`, agent.Approved.String(), agent.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgentRows(rows)
}
