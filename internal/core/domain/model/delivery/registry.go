package delivery

import (
	"slices"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/pkg/errs"
)

// Registry holds the finalized deliveries of a session in creation order and
// hands out their numbers.
type Registry struct {
	deliveries []*Delivery
	nextNumber int
}

// NewRegistry creates an empty registry whose first delivery gets number 1.
func NewRegistry() *Registry {
	return &Registry{nextNumber: 1}
}

// Create commits a new delivery with the next number. The counter only moves
// when the delivery is valid.
func (r *Registry) Create(customer catalog.Customer, items []LineItem) (*Delivery, error) {
	d, err := NewDelivery(r.nextNumber, customer, items)
	if err != nil {
		return nil, err
	}

	r.nextNumber++
	r.deliveries = append(r.deliveries, d)
	return d.Clone(), nil
}

// Get returns the delivery with the given number.
func (r *Registry) Get(number int) (*Delivery, error) {
	i := r.indexOf(number)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("delivery", number)
	}
	return r.deliveries[i].Clone(), nil
}

// Append concatenates items to the delivery with the given number.
func (r *Registry) Append(number int, items []LineItem) (*Delivery, error) {
	i := r.indexOf(number)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("delivery", number)
	}

	if err := r.deliveries[i].Append(items); err != nil {
		return nil, err
	}
	return r.deliveries[i].Clone(), nil
}

// Remove deletes the delivery with the given number. Numbers of the remaining
// deliveries do not change.
func (r *Registry) Remove(number int) error {
	i := r.indexOf(number)
	if i < 0 {
		return errs.NewObjectNotFoundError("delivery", number)
	}

	r.deliveries = slices.Delete(r.deliveries, i, i+1)
	return nil
}

// List returns copies of all deliveries in creation order.
func (r *Registry) List() []*Delivery {
	out := make([]*Delivery, len(r.deliveries))
	for i, d := range r.deliveries {
		out[i] = d.Clone()
	}
	return out
}

// Total returns the number of deliveries currently registered.
func (r *Registry) Total() int {
	return len(r.deliveries)
}

// Clone returns an independent copy of the registry, counter included.
func (r *Registry) Clone() *Registry {
	return &Registry{
		deliveries: r.List(),
		nextNumber: r.nextNumber,
	}
}

func (r *Registry) indexOf(number int) int {
	return slices.IndexFunc(r.deliveries, func(d *Delivery) bool {
		return d.number == number
	})
}
