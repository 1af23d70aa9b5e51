// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern for
// the delivery domain aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The status is stored under its wire name; order, customer,
// status and agent columns are indexed for the read models and the repository
// filters.
type DeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         int64     `gorm:"index"`
	RestaurantID    int64
	CustomerID      int64  `gorm:"index"`
	PickupAddress   string
	DeliveryAddress string
	Status          string     `gorm:"index"`
	EtaMinutes      float64
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	Notes           string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all delivery attributes including the optional agent reference and the
// lifecycle timestamps.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var agentID *uuid.UUID
	if id := d.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return DeliveryDTO{
		ID:              d.ID().Bytes(),
		OrderID:         d.OrderID(),
		RestaurantID:    d.RestaurantID(),
		CustomerID:      d.CustomerID(),
		PickupAddress:   d.PickupAddress(),
		DeliveryAddress: d.DeliveryAddress(),
		Status:          d.Status().String(),
		EtaMinutes:      d.EtaMinutes(),
		AgentID:         agentID,
		Notes:           d.Notes(),
		CreatedAt:       d.CreatedAt(),
		AssignedAt:      d.AssignedAt(),
		PickedUpAt:      d.PickedUpAt(),
		DeliveredAt:     d.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including status, agent reference, and
// lifecycle timestamps using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		dto.OrderID, dto.RestaurantID, dto.CustomerID,
		dto.PickupAddress, dto.DeliveryAddress,
		status,
		dto.EtaMinutes,
		agentID,
		dto.Notes,
		dto.CreatedAt,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
	)
}
