package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
)

// AgentResponse is the agent read model shared by every agent query.
// Credentials and invite tokens never leave the write side; the read model
// carries only directory data.
type AgentResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	Phone         string
	VehicleType   string
	LicenseNumber string
	Approval      string
	Availability  string
	CreatedAt     time.Time
	LastActiveAt  time.Time
}

// agentColumns is the select list every agent query shares; the scan order in
// scanAgentRows depends on it.
const agentColumns = `
	id,
	name,
	email,
	phone,
	vehicle_type,
	license_number,
	approval,
	availability,
	created_at,
	last_active_at`

// scanAgentRows drains rows produced with agentColumns into read models.
func scanAgentRows(rows *sql.Rows) ([]AgentResponse, error) {
	agents := make([]AgentResponse, 0)

	for rows.Next() {
		resp, err := scanAgentRow(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}

// scanAgentRow scans one agentColumns row into a read model.
func scanAgentRow(rows *sql.Rows) (AgentResponse, error) {
	var (
		resp AgentResponse
		id   uuid.UUID
	)

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&resp.Phone,
		&resp.VehicleType,
		&resp.LicenseNumber,
		&resp.Approval,
		&resp.Availability,
		&resp.CreatedAt,
		&resp.LastActiveAt,
	); err != nil {
		return AgentResponse{}, err
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AgentResponse{}, err
	}
	resp.ID = agentID

	return resp, nil
}
