// Package agentrepo provides data transfer objects and mapping functions for
// agent persistence. This package implements the repository pattern for the
// agent domain aggregate, handling the conversion between domain entities and
// database representations.
package agentrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// States are stored under their wire names so that raw-SQL read models and the
// repository filters share one vocabulary. The email carries a unique index;
// last_active_at is indexed because the available pool is ordered by it.
type AgentDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Email                string `gorm:"uniqueIndex"`
	Phone                string
	VehicleType          string
	LicenseNumber        string
	PasswordHash         string
	InviteToken          *string
	InviteTokenExpiresAt *time.Time
	Approval             string `gorm:"index"`
	Availability         string `gorm:"index"`
	CreatedAt            time.Time
	LastActiveAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents".
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:                   a.ID().Bytes(),
		Name:                 a.Name(),
		Email:                a.Email(),
		Phone:                a.Phone(),
		VehicleType:          a.VehicleType(),
		LicenseNumber:        a.LicenseNumber(),
		PasswordHash:         a.PasswordHash(),
		InviteToken:          a.InviteToken(),
		InviteTokenExpiresAt: a.InviteTokenExpiresAt(),
		Approval:             a.Approval().String(),
		Availability:         a.Availability().String(),
		CreatedAt:            a.CreatedAt(),
		LastActiveAt:         a.LastActiveAt(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
// Reconstructs the complete aggregate including states and whichever
// credential form the agent holds using RestoreAgent.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	approval, err := agent.ParseApprovalState(dto.Approval)
	if err != nil {
		return nil, err
	}

	availability, err := agent.ParseAvailabilityState(dto.Availability)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(
		id,
		dto.Name, dto.Email, dto.Phone, dto.VehicleType, dto.LicenseNumber,
		dto.PasswordHash,
		dto.InviteToken, dto.InviteTokenExpiresAt,
		approval, availability,
		dto.CreatedAt, dto.LastActiveAt,
	)
}
