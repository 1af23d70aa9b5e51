package services

import (
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// Domain errors for dispatch operations.
var (
	// ErrNoAvailableAgents is returned when auto-assignment finds the
	// available pool empty.
	ErrNoAvailableAgents = errors.New("no available agents")
	// ErrAgentInactive is returned when the selected agent is
	// administratively inactive.
	ErrAgentInactive = errors.New("agent is inactive and cannot be assigned deliveries")
)

// AgentDispatcher is the assignment policy binding deliveries to agents.
//
// The policy is deliberately simple: given the available pool in its defined
// order (most recently active first), the first agent wins. There is no
// load balancing and no distance or ETA weighting; with a fixed pool state
// the outcome is deterministic.
type AgentDispatcher struct{}

// NewAgentDispatcher creates a new AgentDispatcher instance.
func NewAgentDispatcher() AgentDispatcher {
	return AgentDispatcher{}
}

// Dispatch selects an agent for the delivery from the available pool and
// binds it, stamping the assignment on both sides.
//
// Returns ErrNoAvailableAgents for an empty pool. The pool ordering is owned
// by the Agent Directory query; Dispatch only ever takes the first entry.
func (ad AgentDispatcher) Dispatch(d *delivery.Delivery, pool []*agent.Agent) (*agent.Agent, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoAvailableAgents
	}

	selected := pool[0]
	if err := ad.Bind(d, selected); err != nil {
		return nil, err
	}

	return selected, nil
}

// Bind assigns a specific agent to the delivery, enforcing that the agent is
// not administratively inactive. The agent's availability is left untouched:
// agents are not locked while delivering and may hold several concurrent
// deliveries. Only the last-active timestamp is refreshed.
func (ad AgentDispatcher) Bind(d *delivery.Delivery, a *agent.Agent) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsAssignable() {
		return ErrAgentInactive
	}

	if err := d.Assign(a.ID()); err != nil {
		return err
	}

	a.Touch()
	return nil
}
