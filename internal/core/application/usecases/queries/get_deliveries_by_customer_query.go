package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveriesByCustomerQueryIsNotConstructed = errors.New(
		"GetDeliveriesByCustomerQuery must be created via NewGetDeliveriesByCustomerQuery constructor",
	)
	ErrCustomerIDIsInvalid = errors.New("customer id must be greater than 0")
)

// GetDeliveriesByCustomerQuery retrieves a customer's delivery history,
// newest first.
type GetDeliveriesByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByCustomerQuery creates a query for one customer's history.
// The customer id must be positive.
func NewGetDeliveriesByCustomerQuery(customerID int64) (GetDeliveriesByCustomerQuery, error) {
	q := GetDeliveriesByCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetDeliveriesByCustomerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesByCustomerQueryIsNotConstructed if validation fails.
func (q GetDeliveriesByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetDeliveriesByCustomerQuery) CustomerID() int64 {
	return q.customerID
}

func (q *GetDeliveriesByCustomerQuery) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	q.customerID = customerID
	return nil
}
