package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryByOrderQueryIsNotConstructed = errors.New(
		"GetDeliveryByOrderQuery must be created via NewGetDeliveryByOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetDeliveryByOrderQuery retrieves the delivery fulfilling a given order.
// Deliveries map 1:1 to orders, so the result is a single record.
type GetDeliveryByOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderQuery creates a query resolving an order to its delivery.
// The order id must be positive.
func NewGetDeliveryByOrderQuery(orderID int64) (GetDeliveryByOrderQuery, error) {
	q := GetDeliveryByOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetDeliveryByOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryByOrderQueryIsNotConstructed if validation fails.
func (q GetDeliveryByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderQueryIsNotConstructed)
}

// OrderID returns the order being resolved.
func (q GetDeliveryByOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetDeliveryByOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	q.orderID = orderID
	return nil
}
