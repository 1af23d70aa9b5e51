package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByCustomerQueryHandler retrieves one customer's delivery history.
type GetDeliveriesByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByCustomerQueryHandler creates a handler for customer history.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesByCustomerQueryHandler(db *gorm.DB) GetDeliveriesByCustomerQueryHandler {
	return GetDeliveriesByCustomerQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's deliveries, newest first.
func (h GetDeliveriesByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByCustomerQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
