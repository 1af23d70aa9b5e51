// Package services provides domain services that orchestrate business
// operations across multiple domain entities.
//
// The package includes:
//   - AgentDispatcher: the assignment policy selecting an agent for a delivery
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
