// Package queries contains the read side of the form session: the draft,
// the deliveries list and the selector options. Queries never change state
// and return plain read models ready for rendering.
package queries

import (
	"context"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/workflow"
)

// NoNotes is shown for customers without notes.
const NoNotes = "No notes"

type (
	// WorkflowReader provides a consistent copy of the session workflow.
	WorkflowReader interface {
		Snapshot(ctx context.Context) (*workflow.Workflow, error)
	}

	// CatalogReader provides the selector collections.
	CatalogReader interface {
		Customers(ctx context.Context) (catalog.Customers, error)
		Products(ctx context.Context) (catalog.Products, error)
	}
)

// CustomerView is a customer as displayed in selectors and delivery cards.
type CustomerView struct {
	ID      string
	Label   string
	Name    string
	Address []string
	Phone   []string
	// Notes falls back to NoNotes when the customer has none.
	Notes string
}

// ProductView is a product as displayed in selectors.
type ProductView struct {
	ID          string
	Label       string
	Description string
	Attributes  map[string]any
}

// LineItemView is one product row of a draft or delivery.
type LineItemView struct {
	ProductID   string
	Description string
	Quantity    int
}

// DeliveryView is a finalized delivery card.
type DeliveryView struct {
	Number   int
	Customer CustomerView
	Items    []LineItemView
}

func customerView(c catalog.Customer) CustomerView {
	notes := c.Notes()
	if notes == "" {
		notes = NoNotes
	}
	return CustomerView{
		ID:      c.ID().String(),
		Label:   c.Label(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
		Notes:   notes,
	}
}

func productView(p catalog.Product) ProductView {
	return ProductView{
		ID:          p.ID().String(),
		Label:       p.Label(),
		Description: p.Description(),
		Attributes:  p.Attributes(),
	}
}

func lineItemViews(items []delivery.LineItem) []LineItemView {
	views := make([]LineItemView, 0, len(items))
	for _, item := range items {
		views = append(views, LineItemView{
			ProductID:   item.ProductID().String(),
			Description: item.Product().Description(),
			Quantity:    item.Quantity().Int(),
		})
	}
	return views
}

// NewDeliveryView builds the read model of d.
func NewDeliveryView(d *delivery.Delivery) DeliveryView {
	return DeliveryView{
		Number:   d.Number(),
		Customer: customerView(d.Customer()),
		Items:    lineItemViews(d.Items()),
	}
}
