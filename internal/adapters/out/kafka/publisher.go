// Package kafka provides the Kafka-backed implementation of the event sink.
// Events are JSON-encoded and keyed by delivery id so that the facts for one
// delivery stay ordered within a partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"

	"dispatch/internal/core/domain/events"
)

// SaramaEventPublisher publishes domain events through a sarama SyncProducer.
type SaramaEventPublisher struct {
	producer sarama.SyncProducer
}

// NewSyncProducer creates a synchronous producer for the given brokers,
// configured the way the publisher expects (successes returned so SendMessage
// can report errors).
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return producer, nil
}

// NewSaramaEventPublisher creates a publisher on top of an existing producer.
func NewSaramaEventPublisher(producer sarama.SyncProducer) *SaramaEventPublisher {
	return &SaramaEventPublisher{producer: producer}
}

// Publish JSON-encodes the event and sends it to the topic, keyed so events
// for one delivery land on one partition in order.
func (p *SaramaEventPublisher) Publish(_ context.Context, topic, key string, event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Kind(), err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.StringEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Kind(), err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *SaramaEventPublisher) Close() error {
	return p.producer.Close()
}
