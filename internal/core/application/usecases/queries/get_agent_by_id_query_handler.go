package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/pkg/errs"
)

// GetAgentByIDQueryHandler retrieves one agent's directory record.
type GetAgentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentByIDQueryHandler creates a handler for agent lookup by id.
// Requires a GORM database connection for query execution.
func NewGetAgentByIDQueryHandler(db *gorm.DB) GetAgentByIDQueryHandler {
	return GetAgentByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error wrapping errs.ErrObjectNotFound
// when the agent does not exist.
func (h GetAgentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetAgentByIDQuery,
) (AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+agentColumns+`
		FROM agents
		WHERE id = ?
		LIMIT 1
	`, query.AgentID().Bytes()).Rows()
	if err != nil {
		return AgentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AgentResponse{}, err
		}
		return AgentResponse{}, errs.NewObjectNotFoundError("agentId", query.AgentID())
	}

	return scanAgentRow(rows)
}
