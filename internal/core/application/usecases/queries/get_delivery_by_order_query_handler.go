package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/pkg/errs"
)

// GetDeliveryByOrderQueryHandler resolves an order to its delivery record.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for order resolution.
// Requires a GORM database connection for query execution.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle executes the query to resolve the order's delivery.
// Returns an error wrapping errs.ErrObjectNotFound when no delivery exists
// for the order.
func (h GetDeliveryByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
		LIMIT 1
	`, query.OrderID()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return scanDeliveryRow(rows)
}
