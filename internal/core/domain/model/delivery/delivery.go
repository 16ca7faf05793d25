package delivery

import (
	"errors"
	"fmt"
	"slices"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/pkg/errs"
)

var (
	// ErrEmptyDelivery is returned when a delivery would be committed without
	// any line item.
	ErrEmptyDelivery = errors.New("delivery must contain at least one line item")

	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// via NewDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is a finalized set of line items for one customer.
//
// Delivery follows these invariants:
//   - number is positive and stable for the whole session
//   - customer is a snapshot taken at commit time
//   - items is never empty
type Delivery struct {
	// number is the session-wide stable identity shown as "Delivery #n"
	number int
	// customer is copied by value and never re-resolved
	customer catalog.Customer
	// items keeps insertion order across appends
	items []LineItem
	// isConstructed ensures the delivery was created via NewDelivery
	isConstructed bool
}

// NewDelivery creates a Delivery. It fails with ErrEmptyDelivery when items
// is empty.
func NewDelivery(number int, customer catalog.Customer, items []LineItem) (*Delivery, error) {
	d := &Delivery{isConstructed: true}

	if err := errors.Join(
		d.setNumber(number),
		d.setCustomer(customer),
		d.setItems(items),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// Number returns the stable delivery number.
func (d *Delivery) Number() int {
	return d.number
}

// Customer returns the customer snapshot.
func (d *Delivery) Customer() catalog.Customer {
	return d.customer
}

// Items returns a copy of the line items.
func (d *Delivery) Items() []LineItem {
	return slices.Clone(d.items)
}

// Append concatenates items after the existing ones. Nothing is merged, even
// when a product is already present. Appending nothing fails with
// ErrEmptyDelivery.
func (d *Delivery) Append(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyDelivery
	}
	if err := validateItems(items); err != nil {
		return err
	}

	d.items = append(d.items, items...)
	return nil
}

// Clone returns an independent copy of the delivery.
func (d *Delivery) Clone() *Delivery {
	c := *d
	c.items = slices.Clone(d.items)
	return &c
}

func (d *Delivery) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery number", fmt.Errorf("%d is not greater than 0", number))
	}

	d.number = number
	return nil
}

func (d *Delivery) setCustomer(customer catalog.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	d.customer = customer
	return nil
}

func (d *Delivery) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyDelivery
	}
	if err := validateItems(items); err != nil {
		return err
	}

	d.items = slices.Clone(items)
	return nil
}

func validateItems(items []LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
