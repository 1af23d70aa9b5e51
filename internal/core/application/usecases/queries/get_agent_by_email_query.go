package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAgentByEmailQueryIsNotConstructed = errors.New(
		"GetAgentByEmailQuery must be created via NewGetAgentByEmailQuery constructor",
	)
	ErrEmailIsEmpty = errors.New("email is required")
)

// GetAgentByEmailQuery retrieves an agent's directory record by its unique
// email. Used by the auth collaborator during login.
type GetAgentByEmailQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetAgentByEmailQuery creates a query for agent lookup by email.
func NewGetAgentByEmailQuery(email string) (GetAgentByEmailQuery, error) {
	q := GetAgentByEmailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setEmail(email); err != nil {
		return GetAgentByEmailQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentByEmailQueryIsNotConstructed if validation fails.
func (q GetAgentByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentByEmailQueryIsNotConstructed)
}

// Email returns the email being looked up, matched case-sensitively.
func (q GetAgentByEmailQuery) Email() string {
	return q.email
}

func (q *GetAgentByEmailQuery) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsEmpty
	}

	q.email = email
	return nil
}
