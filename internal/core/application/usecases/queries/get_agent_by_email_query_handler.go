package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/pkg/errs"
)

// GetAgentByEmailQueryHandler retrieves an agent's directory record by email.
// The match is case-sensitive: Agent@x.com and agent@x.com are distinct.
type GetAgentByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentByEmailQueryHandler creates a handler for agent lookup by email.
// Requires a GORM database connection for query execution.
func NewGetAgentByEmailQueryHandler(db *gorm.DB) GetAgentByEmailQueryHandler {
	return GetAgentByEmailQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error wrapping errs.ErrObjectNotFound
// when no agent carries the email.
func (h GetAgentByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetAgentByEmailQuery,
) (AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+agentColumns+`
		FROM agents
		WHERE email = ?
		LIMIT 1
	`, query.Email()).Rows()
	if err != nil {
		return AgentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AgentResponse{}, err
		}
		return AgentResponse{}, errs.NewObjectNotFoundError("email", query.Email())
	}

	return scanAgentRow(rows)
}
