package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves the deliveries still waiting for an
// agent, oldest first. The same ordering drives the background sweep, so the
// first entry is the next one to be assigned.
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query to retrieve the waiting queue.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}
