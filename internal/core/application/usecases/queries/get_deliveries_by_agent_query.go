package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveriesByAgentQueryIsNotConstructed = errors.New(
	"GetDeliveriesByAgentQuery must be created via NewGetDeliveriesByAgentQuery constructor",
)

// GetDeliveriesByAgentQuery retrieves the deliveries bound to one agent.
// With activeOnly set, the result is narrowed to the in-flight statuses
// (ASSIGNED, PICKED_UP, IN_TRANSIT); otherwise the full history is returned.
type GetDeliveriesByAgentQuery struct { //nolint:recvcheck //using for validation
	agentID    kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByAgentQuery creates a query for one agent's deliveries.
func NewGetDeliveriesByAgentQuery(agentID kernel.UUID, activeOnly bool) (GetDeliveriesByAgentQuery, error) {
	q := GetDeliveriesByAgentQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetDeliveriesByAgentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesByAgentQueryIsNotConstructed if validation fails.
func (q GetDeliveriesByAgentQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByAgentQueryIsNotConstructed)
}

// AgentID returns the agent whose deliveries are requested.
func (q GetDeliveriesByAgentQuery) AgentID() kernel.UUID {
	return q.agentID
}

// ActiveOnly reports whether the result is narrowed to in-flight deliveries.
func (q GetDeliveriesByAgentQuery) ActiveOnly() bool {
	return q.activeOnly
}

func (q *GetDeliveriesByAgentQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}
