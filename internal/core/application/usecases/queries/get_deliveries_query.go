package queries

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves all finalized deliveries in creation order.
type GetDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates the query.
func NewGetDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// GetDeliveriesQueryResponse is the deliveries list read model.
type GetDeliveriesQueryResponse struct {
	Deliveries []DeliveryView
	// Total is the "Total Deliveries" counter.
	Total int
	// EditingNumber marks the delivery being edited, nil when Idle.
	EditingNumber *int
}
