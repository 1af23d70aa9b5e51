// Package events defines the state-change facts the dispatch core hands to the
// event sink. Each event kind is a fixed-field struct (a tagged variant) with
// the exact payload its consumers rely on; the dynamic map payloads of earlier
// iterations are gone for good.
//
// Events know which logical streams they belong to: every fact goes to the
// general delivery-events stream, and status-affecting facts additionally go
// to the status-updates stream. Delivery of events is fire-and-forget and
// never observed by the operations that produce them.
package events

import (
	"time"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// Logical event streams. Names are part of the wire contract with the
// notification consumers.
const (
	TopicDeliveryEvents = "delivery-events"
	TopicStatusUpdates  = "delivery-status-updates"
)

// Event kind discriminators carried in the eventType payload field.
const (
	KindDeliveryCreated       = "DELIVERY_CREATED"
	KindDeliveryAssigned      = "DELIVERY_ASSIGNED"
	KindDeliveryStatusUpdated = "DELIVERY_STATUS_UPDATED"
	KindDeliveryCompleted     = "DELIVERY_COMPLETED"
	KindDeliveryCancelled     = "DELIVERY_CANCELLED"
)

// DomainEvent is implemented by every event variant.
type DomainEvent interface {
	// Kind returns the eventType discriminator.
	Kind() string
	// PartitionKey returns the key used to order events per delivery.
	PartitionKey() string
	// Topics returns the logical streams the event is published to.
	Topics() []string
}

// DeliveryCreated is emitted when a delivery record is created.
type DeliveryCreated struct {
	EventType       string    `json:"eventType"`
	DeliveryID      string    `json:"deliveryId"`
	OrderID         int64     `json:"orderId"`
	RestaurantID    int64     `json:"restaurantId"`
	CustomerID      int64     `json:"customerId"`
	Status          string    `json:"status"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	EtaMinutes      float64   `json:"estimatedDeliveryTime"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewDeliveryCreated builds the creation fact from a freshly persisted delivery.
func NewDeliveryCreated(d *delivery.Delivery) DeliveryCreated {
	return DeliveryCreated{
		EventType:       KindDeliveryCreated,
		DeliveryID:      d.ID().String(),
		OrderID:         d.OrderID(),
		RestaurantID:    d.RestaurantID(),
		CustomerID:      d.CustomerID(),
		Status:          d.Status().String(),
		PickupAddress:   d.PickupAddress(),
		DeliveryAddress: d.DeliveryAddress(),
		EtaMinutes:      d.EtaMinutes(),
		Timestamp:       time.Now(),
	}
}

func (e DeliveryCreated) Kind() string         { return e.EventType }
func (e DeliveryCreated) PartitionKey() string { return e.DeliveryID }
func (e DeliveryCreated) Topics() []string     { return []string{TopicDeliveryEvents} }

// DeliveryAssigned is emitted when an agent is bound to a delivery.
// It goes to both streams so that trackers and notifiers each see it.
type DeliveryAssigned struct {
	EventType  string    `json:"eventType"`
	DeliveryID string    `json:"deliveryId"`
	OrderID    int64     `json:"orderId"`
	CustomerID int64     `json:"customerId"`
	AgentID    string    `json:"agentId"`
	AgentName  string    `json:"agentName"`
	AgentPhone string    `json:"agentPhone"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewDeliveryAssigned builds the assignment fact for a delivery and its new agent.
func NewDeliveryAssigned(d *delivery.Delivery, a *agent.Agent) DeliveryAssigned {
	return DeliveryAssigned{
		EventType:  KindDeliveryAssigned,
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID(),
		CustomerID: d.CustomerID(),
		AgentID:    a.ID().String(),
		AgentName:  a.Name(),
		AgentPhone: a.Phone(),
		Status:     d.Status().String(),
		Timestamp:  time.Now(),
	}
}

func (e DeliveryAssigned) Kind() string         { return e.EventType }
func (e DeliveryAssigned) PartitionKey() string { return e.DeliveryID }
func (e DeliveryAssigned) Topics() []string {
	return []string{TopicDeliveryEvents, TopicStatusUpdates}
}

// DeliveryStatusUpdated is emitted on every status change.
// Agent fields are nil when the delivery has no bound agent.
type DeliveryStatusUpdated struct {
	EventType  string    `json:"eventType"`
	DeliveryID string    `json:"deliveryId"`
	OrderID    int64     `json:"orderId"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	AgentName  *string   `json:"agentName"`
	AgentPhone *string   `json:"agentPhone"`
	EtaMinutes float64   `json:"estimatedDeliveryTime"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewDeliveryStatusUpdated builds the status-change fact. The agent may be
// nil for unassigned deliveries.
func NewDeliveryStatusUpdated(d *delivery.Delivery, a *agent.Agent) DeliveryStatusUpdated {
	e := DeliveryStatusUpdated{
		EventType:  KindDeliveryStatusUpdated,
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID(),
		CustomerID: d.CustomerID(),
		Status:     d.Status().String(),
		EtaMinutes: d.EtaMinutes(),
		Timestamp:  time.Now(),
	}
	if a != nil {
		name, phone := a.Name(), a.Phone()
		e.AgentName = &name
		e.AgentPhone = &phone
	}
	return e
}

func (e DeliveryStatusUpdated) Kind() string         { return e.EventType }
func (e DeliveryStatusUpdated) PartitionKey() string { return e.DeliveryID }
func (e DeliveryStatusUpdated) Topics() []string     { return []string{TopicStatusUpdates} }

// DeliveryCompleted is emitted in addition to the status update when a
// delivery reaches DELIVERED with a known agent.
type DeliveryCompleted struct {
	EventType  string    `json:"eventType"`
	DeliveryID string    `json:"deliveryId"`
	OrderID    int64     `json:"orderId"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	AgentName  string    `json:"agentName"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewDeliveryCompleted builds the completion fact.
func NewDeliveryCompleted(d *delivery.Delivery, a *agent.Agent) DeliveryCompleted {
	return DeliveryCompleted{
		EventType:  KindDeliveryCompleted,
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID(),
		CustomerID: d.CustomerID(),
		Status:     delivery.Delivered.String(),
		AgentName:  a.Name(),
		Timestamp:  time.Now(),
	}
}

func (e DeliveryCompleted) Kind() string         { return e.EventType }
func (e DeliveryCompleted) PartitionKey() string { return e.DeliveryID }
func (e DeliveryCompleted) Topics() []string {
	return []string{TopicDeliveryEvents, TopicStatusUpdates}
}

// CancellationMetadata carries auxiliary facts about a cancellation.
type CancellationMetadata struct {
	Reason string `json:"reason"`
}

// DeliveryCancelled is emitted when a delivery is cancelled.
type DeliveryCancelled struct {
	EventType  string               `json:"eventType"`
	DeliveryID string               `json:"deliveryId"`
	OrderID    int64                `json:"orderId"`
	CustomerID int64                `json:"customerId"`
	Status     string               `json:"status"`
	Metadata   CancellationMetadata `json:"metadata"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewDeliveryCancelled builds the cancellation fact with its reason metadata.
func NewDeliveryCancelled(d *delivery.Delivery, reason string) DeliveryCancelled {
	return DeliveryCancelled{
		EventType:  KindDeliveryCancelled,
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID(),
		CustomerID: d.CustomerID(),
		Status:     delivery.Cancelled.String(),
		Metadata:   CancellationMetadata{Reason: reason},
		Timestamp:  time.Now(),
	}
}

func (e DeliveryCancelled) Kind() string         { return e.EventType }
func (e DeliveryCancelled) PartitionKey() string { return e.DeliveryID }
func (e DeliveryCancelled) Topics() []string {
	return []string{TopicDeliveryEvents, TopicStatusUpdates}
}
