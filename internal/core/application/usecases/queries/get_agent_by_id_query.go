package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAgentByIDQueryIsNotConstructed = errors.New(
	"GetAgentByIDQuery must be created via NewGetAgentByIDQuery constructor",
)

// GetAgentByIDQuery retrieves one agent's directory record.
type GetAgentByIDQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentByIDQuery creates a query for one agent's record.
func NewGetAgentByIDQuery(agentID kernel.UUID) (GetAgentByIDQuery, error) {
	q := GetAgentByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentByIDQueryIsNotConstructed if validation fails.
func (q GetAgentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentByIDQueryIsNotConstructed)
}

// AgentID returns the agent being looked up.
func (q GetAgentByIDQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q *GetAgentByIDQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}
