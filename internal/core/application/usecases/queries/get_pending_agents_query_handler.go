package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/agent"
)

// GetPendingAgentsQueryHandler retrieves the admin approval queue.
type GetPendingAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingAgentsQueryHandler creates a handler for the approval queue.
// Requires a GORM database connection for query execution.
func NewGetPendingAgentsQueryHandler(db *gorm.DB) GetPendingAgentsQueryHandler {
	return GetPendingAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve agents awaiting approval,
// oldest registration first.
func (h GetPendingAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+agentColumns+`
		FROM agents
		WHERE approval = ?
		ORDER BY created_at
	`, agent.PendingApproval.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgentRows(rows)
}
