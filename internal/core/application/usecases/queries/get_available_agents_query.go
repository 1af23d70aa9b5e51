package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableAgentsQueryIsNotConstructed = errors.New(
	"GetAvailableAgentsQuery must be created via NewGetAvailableAgentsQuery constructor",
)

// GetAvailableAgentsQuery retrieves the bookable agent pool: approved and
// available agents ordered by last-active timestamp descending. This is the
// same ordering auto-assignment draws from, so the first entry is the next
// agent to be picked.
type GetAvailableAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableAgentsQuery creates a query to retrieve the available pool.
func NewGetAvailableAgentsQuery() GetAvailableAgentsQuery {
	return GetAvailableAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableAgentsQueryIsNotConstructed if validation fails.
func (q GetAvailableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableAgentsQueryIsNotConstructed)
}
