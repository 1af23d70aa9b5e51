package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// ErrorResponse is the JSON error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body of POST /deliveries.
type CreateDeliveryRequest struct {
	OrderID         int64  `json:"orderId"`
	RestaurantID    int64  `json:"restaurantId"`
	CustomerID      int64  `json:"customerId"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// UpdateDeliveryRequest is the body of PUT /deliveries/{id}.
// Absent fields leave the stored value untouched.
type UpdateDeliveryRequest struct {
	OrderID         *int64  `json:"orderId"`
	RestaurantID    *int64  `json:"restaurantId"`
	CustomerID      *int64  `json:"customerId"`
	PickupAddress   *string `json:"pickupAddress"`
	DeliveryAddress *string `json:"deliveryAddress"`
	Notes           *string `json:"notes"`
}

// RegisterAgentRequest is the body of POST /deliveries/agents.
type RegisterAgentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicleType"`
	LicenseNumber string `json:"licenseNumber"`
	Password      string `json:"password"`
}

// InviteAgentRequest is the body of POST /deliveries/agents/admin.
type InviteAgentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicleType"`
	LicenseNumber string `json:"licenseNumber"`
}

// DeliveryJSON is the delivery representation returned by every delivery route.
type DeliveryJSON struct {
	ID              string     `json:"id"`
	OrderID         int64      `json:"orderId"`
	RestaurantID    int64      `json:"restaurantId"`
	CustomerID      int64      `json:"customerId"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Status          string     `json:"status"`
	EtaMinutes      float64    `json:"estimatedDeliveryTime"`
	AgentID         *string    `json:"agentId"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	AssignedAt      *time.Time `json:"assignedAt"`
	PickedUpAt      *time.Time `json:"pickedUpAt"`
	DeliveredAt     *time.Time `json:"deliveredAt"`
}

// AgentJSON is the agent representation returned by every agent route.
// The historical single status field carries the approval state; availability
// is reported separately.
type AgentJSON struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	VehicleType   string    `json:"vehicleType"`
	LicenseNumber string    `json:"licenseNumber"`
	Status        string    `json:"status"`
	Availability  string    `json:"availability"`
	CreatedAt     time.Time `json:"createdAt"`
	LastActiveAt  time.Time `json:"lastActiveAt"`
}

// InvitedAgentJSON extends AgentJSON with the open invite. Returned only from
// the admin provisioning route; the token is shown exactly once.
type InvitedAgentJSON struct {
	AgentJSON
	InviteToken          string     `json:"inviteToken"`
	InviteTokenExpiresAt *time.Time `json:"inviteTokenExpiresAt"`
}

// deliveryFromAggregate maps a write-side aggregate to its JSON form.
func deliveryFromAggregate(d *delivery.Delivery) DeliveryJSON {
	var agentID *string
	if id := d.AgentID(); id != nil {
		s := id.String()
		agentID = &s
	}

	return DeliveryJSON{
		ID:              d.ID().String(),
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

// deliveryFromReadModel maps a query read model to its JSON form.
func deliveryFromReadModel(d queries.DeliveryResponse) DeliveryJSON {
	var agentID *string
	if d.AgentID != nil {
		s := d.AgentID.String()
		agentID = &s
	}

	return DeliveryJSON{
		ID:              d.ID.String(),
		OrderID:         d.OrderID,
		RestaurantID:    d.RestaurantID,
		CustomerID:      d.CustomerID,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Status:          d.Status,
		EtaMinutes:      d.EtaMinutes,
		AgentID:         agentID,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		AssignedAt:      d.AssignedAt,
		PickedUpAt:      d.PickedUpAt,
		DeliveredAt:     d.DeliveredAt,
	}
}

// deliveriesFromReadModels maps a read-model slice to its JSON form.
func deliveriesFromReadModels(rows []queries.DeliveryResponse) []DeliveryJSON {
	out := make([]DeliveryJSON, len(rows))
	for i, row := range rows {
		out[i] = deliveryFromReadModel(row)
	}
	return out
}

// agentFromAggregate maps a write-side aggregate to its JSON form.
func agentFromAggregate(a *agent.Agent) AgentJSON {
	return AgentJSON{
		ID:            a.ID().String(),
		Name:          a.Name(),
		Email:         a.Email(),
		Phone:         a.Phone(),
		VehicleType:   a.VehicleType(),
		LicenseNumber: a.LicenseNumber(),
		Status:        a.Approval().String(),
		Availability:  a.Availability().String(),
		CreatedAt:     a.CreatedAt(),
		LastActiveAt:  a.LastActiveAt(),
	}
}

// agentFromReadModel maps a query read model to its JSON form.
func agentFromReadModel(a queries.AgentResponse) AgentJSON {
	return AgentJSON{
		ID:            a.ID.String(),
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		VehicleType:   a.VehicleType,
		LicenseNumber: a.LicenseNumber,
		Status:        a.Approval,
		Availability:  a.Availability,
		CreatedAt:     a.CreatedAt,
		LastActiveAt:  a.LastActiveAt,
	}
}

// agentsFromReadModels maps a read-model slice to its JSON form.
func agentsFromReadModels(rows []queries.AgentResponse) []AgentJSON {
	out := make([]AgentJSON, len(rows))
	for i, row := range rows {
		out[i] = agentFromReadModel(row)
	}
	return out
}
