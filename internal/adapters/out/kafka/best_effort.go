package kafka

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/ports"
)

// BestEffortPublisher wraps an EventPublisher and downgrades failures to log
// entries. Commands publish strictly after their transaction commits; a
// delivery operation never fails because a notification could not be sent.
type BestEffortPublisher struct {
	inner  ports.EventPublisher
	logger *slog.Logger
}

// NewBestEffortPublisher creates the fire-and-forget decorator.
func NewBestEffortPublisher(inner ports.EventPublisher, logger *slog.Logger) *BestEffortPublisher {
	return &BestEffortPublisher{
		inner:  inner,
		logger: logger.With("component", "event-publisher"),
	}
}

// Publish forwards to the wrapped publisher and logs failures instead of
// returning them.
func (p *BestEffortPublisher) Publish(ctx context.Context, topic, key string, event events.DomainEvent) error {
	if err := p.inner.Publish(ctx, topic, key, event); err != nil {
		p.logger.Error("event publish failed",
			"topic", topic,
			"event", event.Kind(),
			"key", key,
			"error", err)
	}

	return nil
}
