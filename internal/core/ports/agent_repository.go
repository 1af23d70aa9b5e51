// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, the event sink, and the
// ETA estimator. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByEmail retrieves an agent by its unique email, matched
	// case-sensitively. Used for the duplicate-email guard and by the
	// auth collaborator.
	GetByEmail(ctx context.Context, email string) (*agent.Agent, error)

	// GetAllAvailable retrieves the pool auto-assignment draws from:
	// approved and available agents, ordered by last-active timestamp
	// descending (most recently active first). Auto-assignment takes the
	// first entry, so this ordering is part of the behavioral contract.
	GetAllAvailable(ctx context.Context) ([]*agent.Agent, error)

	// GetAllPendingApproval retrieves the admin approval queue.
	GetAllPendingApproval(ctx context.Context) ([]*agent.Agent, error)

	// Delete removes an agent record. Callers must clear or complete the
	// agent's deliveries first; the repository does not cascade.
	Delete(ctx context.Context, id kernel.UUID) error
}
