// Package delivery provides domain entities and business logic for delivery
// record management. It implements the Delivery aggregate root with its
// lifecycle states and timestamp bookkeeping.
//
// The package includes:
//   - Delivery: The aggregate root tying one order to at most one agent
//   - Status: the delivery lifecycle vocabulary
//
// Key business rules:
//   - Deliveries are created PENDING with a creation-time ETA estimate
//   - Timestamps are set exactly when their status is first reached
//   - DELIVERED and CANCELLED are terminal; later updates are rejected
//   - Completing a delivery keeps the agent reference for history
//
// Transitions between non-terminal states are deliberately unrestricted:
// callers may move a delivery from PENDING straight to DELIVERED. The only
// guard is terminality.
package delivery
