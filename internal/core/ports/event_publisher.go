package ports

import (
	"context"

	"dispatch/internal/core/domain/events"
)

// EventPublisher is the event sink contract consumed by the core.
//
// Publishing is fire-and-forget from the core's point of view: commands call
// Publish strictly after their transaction commits and discard the result,
// and the wired implementation is expected to log failures rather than
// propagate them. A delivery operation never fails because a notification
// could not be sent.
type EventPublisher interface {
	// Publish hands one event to the sink for the given logical stream,
	// keyed so that events for one delivery stay ordered.
	Publish(ctx context.Context, topic, key string, event events.DomainEvent) error
}
