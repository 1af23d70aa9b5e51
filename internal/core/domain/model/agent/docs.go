// Package agent provides domain entities and business logic for delivery agent
// management. It implements the Agent aggregate root with approval workflow and
// availability bookkeeping.
//
// The package includes:
//   - Agent: The aggregate root that manages agent identity, credential, and state
//   - ApprovalState / AvailabilityState: two orthogonal state vocabularies
//
// Key business rules:
//   - Agents must have a valid unique identifier, name, email, and phone
//   - Self-registered agents start pending approval; invited agents are usable at once
//   - Only administratively inactive agents are excluded from delivery assignment
//   - Every assignment and completion refreshes the agent's last-active timestamp
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
