// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from the
// database.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryResponse is the delivery read model shared by every delivery query.
// Field names and the status vocabulary match the wire contract of the HTTP
// surface.
type DeliveryResponse struct {
	ID              kernel.UUID
	OrderID         int64
	RestaurantID    int64
	CustomerID      int64
	PickupAddress   string
	DeliveryAddress string
	Status          string
	EtaMinutes      float64
	AgentID         *kernel.UUID
	Notes           string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}

// deliveryColumns is the select list every delivery query shares; the scan
// order in scanDeliveryRows depends on it.
const deliveryColumns = `
	id,
	order_id,
	restaurant_id,
	customer_id,
	pickup_address,
	delivery_address,
	status,
	eta_minutes,
	agent_id,
	notes,
	created_at,
	assigned_at,
	picked_up_at,
	delivered_at`

// scanDeliveryRows drains rows produced with deliveryColumns into read models.
func scanDeliveryRows(rows *sql.Rows) ([]DeliveryResponse, error) {
	deliveries := make([]DeliveryResponse, 0)

	for rows.Next() {
		resp, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// scanDeliveryRow scans one deliveryColumns row into a read model.
func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		resp                               DeliveryResponse
		id                                 uuid.UUID
		agentID                            uuid.NullUUID
		assignedAt, pickedUpAt, deliveredAt sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&resp.OrderID,
		&resp.RestaurantID,
		&resp.CustomerID,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.Status,
		&resp.EtaMinutes,
		&agentID,
		&resp.Notes,
		&resp.CreatedAt,
		&assignedAt,
		&pickedUpAt,
		&deliveredAt,
	); err != nil {
		return DeliveryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.ID = deliveryID

	if agentID.Valid {
		boundAgent, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		resp.AgentID = &boundAgent
	}

	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if pickedUpAt.Valid {
		resp.PickedUpAt = &pickedUpAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	return resp, nil
}
