package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetPendingAgentsQueryIsNotConstructed = errors.New(
	"GetPendingAgentsQuery must be created via NewGetPendingAgentsQuery constructor",
)

// GetPendingAgentsQuery retrieves the admin approval queue: self-registered
// agents that have not been reviewed yet.
type GetPendingAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingAgentsQuery creates a query to retrieve the approval queue.
func NewGetPendingAgentsQuery() GetPendingAgentsQuery {
	return GetPendingAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingAgentsQueryIsNotConstructed if validation fails.
func (q GetPendingAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingAgentsQueryIsNotConstructed)
}
