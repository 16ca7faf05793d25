package delivery

import (
	"errors"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem pairs a product snapshot with a quantity.
type LineItem struct {
	product  catalog.Product
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem from a loaded product and a valid quantity.
func NewLineItem(product catalog.Product, quantity kernel.Quantity) (LineItem, error) {
	if err := errors.Join(product.Validate(), quantity.Validate()); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		product:  product,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrLineItemIsNotConstructed for a zero value.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Product returns the product snapshot.
func (l LineItem) Product() catalog.Product {
	return l.product
}

// ProductID is a shortcut for Product().ID().
func (l LineItem) ProductID() kernel.RefID {
	return l.product.ID()
}

// Quantity returns the number of units.
func (l LineItem) Quantity() kernel.Quantity {
	return l.quantity
}

// withAdded returns a copy of the line item with quantity increased by q.
func (l LineItem) withAdded(q kernel.Quantity) (LineItem, error) {
	sum, err := l.quantity.Add(q)
	if err != nil {
		return LineItem{}, err
	}

	l.quantity = sum
	return l, nil
}
