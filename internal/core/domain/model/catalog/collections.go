package catalog

import "deliverydesk/internal/core/domain/model/kernel"

// Customers is the ordered customers collection as loaded from the source.
type Customers []Customer

// Find returns the customer whose id matches exactly.
func (cs Customers) Find(id kernel.RefID) (Customer, bool) {
	for _, c := range cs {
		if c.ID().IsEqual(id) {
			return c, true
		}
	}
	return Customer{}, false
}

// Products is the ordered products collection as loaded from the source.
type Products []Product

// Find returns the product whose id matches exactly.
func (ps Products) Find(id kernel.RefID) (Product, bool) {
	for _, p := range ps {
		if p.ID().IsEqual(id) {
			return p, true
		}
	}
	return Product{}, false
}
