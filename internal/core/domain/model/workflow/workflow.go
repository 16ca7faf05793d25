package workflow

import (
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
)

// Workflow is the aggregate root of a form session.
//
// It replaces module-level state with one explicit value: the draft being
// assembled, the registry of finalized deliveries, the edit cursor and the
// customer currently shown in the selector.
type Workflow struct {
	draft    *delivery.Draft
	registry *delivery.Registry
	state    State
	// editing is the number of the delivery open for editing, 0 when Idle
	editing int
	// selectedCustomer mirrors the customer selector after StartEdit
	selectedCustomer *kernel.RefID
}

// New creates an Idle workflow with an empty draft and registry.
func New() *Workflow {
	return &Workflow{
		draft:    delivery.NewDraft(),
		registry: delivery.NewRegistry(),
		state:    Idle,
	}
}

// AddProduct adds a resolved product to the pending draft items.
func (w *Workflow) AddProduct(product catalog.Product, quantity kernel.Quantity) error {
	if err := product.Validate(); err != nil {
		return NewInvalidSelectionError("product", product.ID(), err)
	}
	if err := quantity.Validate(); err != nil {
		return NewInvalidSelectionError("quantity", quantity.Int(), err)
	}

	return w.draft.AddProduct(product, quantity)
}

// RemoveLineItem deletes the pending draft item at position.
func (w *Workflow) RemoveLineItem(position int) error {
	return w.draft.RemoveLineItem(position)
}

// StartEdit opens the delivery with the given number for editing. The draft
// is replaced by the delivery's items (as baseline) and the customer selector
// moves to the delivery's customer. Unsaved pending items are dropped.
func (w *Workflow) StartEdit(number int) error {
	d, err := w.registry.Get(number)
	if err != nil {
		return err
	}

	next, err := w.state.StartEdit()
	if err != nil {
		return err
	}

	customerID := d.Customer().ID()
	w.draft.Seed(d.Items())
	w.state = next
	w.editing = number
	w.selectedCustomer = &customerID
	return nil
}

// CancelEdit leaves Editing without committing and clears the draft. It is a
// no-op when Idle.
func (w *Workflow) CancelEdit() {
	if w.state != Editing {
		return
	}

	w.draft.Clear()
	w.resetEdit()
}

// Finalize commits the pending draft items for customer.
//
// Checks run in order: the customer must be a loaded customer
// (ErrInvalidSelection), then the draft must have pending items
// (delivery.ErrEmptyDelivery). When Editing, the items are appended to the
// delivery being edited; otherwise a new delivery is created. The draft is
// cleared in both cases and the resulting delivery is returned.
func (w *Workflow) Finalize(customer catalog.Customer) (*delivery.Delivery, error) {
	if err := customer.Validate(); err != nil {
		return nil, NewInvalidSelectionError("customer", customer.ID(), err)
	}
	if w.draft.IsEmpty() {
		return nil, delivery.ErrEmptyDelivery
	}

	items := w.draft.Snapshot()

	var (
		result *delivery.Delivery
		err    error
	)
	if w.state == Editing {
		result, err = w.registry.Append(w.editing, items)
	} else {
		result, err = w.registry.Create(customer, items)
	}
	if err != nil {
		return nil, err
	}

	w.draft.Clear()
	w.resetEdit()
	return result, nil
}

// RemoveDelivery deletes the delivery with the given number. Removing the
// delivery being edited cancels the edit; the returned flag reports whether
// that happened.
func (w *Workflow) RemoveDelivery(number int) (bool, error) {
	if err := w.registry.Remove(number); err != nil {
		return false, err
	}

	if w.state == Editing && w.editing == number {
		w.draft.Clear()
		w.resetEdit()
		return true, nil
	}
	return false, nil
}

// State returns the current mode.
func (w *Workflow) State() State {
	return w.state
}

// EditCursor returns the number of the delivery being edited.
func (w *Workflow) EditCursor() (int, bool) {
	if w.state != Editing {
		return 0, false
	}
	return w.editing, true
}

// SelectedCustomer returns the customer the selector was moved to by StartEdit.
func (w *Workflow) SelectedCustomer() (kernel.RefID, bool) {
	if w.selectedCustomer == nil {
		return kernel.RefID{}, false
	}
	return *w.selectedCustomer, true
}

// DraftItems returns a copy of the pending draft items.
func (w *Workflow) DraftItems() []delivery.LineItem {
	return w.draft.Snapshot()
}

// DraftBaseline returns the items of the delivery being edited, as seeded.
func (w *Workflow) DraftBaseline() []delivery.LineItem {
	return w.draft.Baseline()
}

// Deliveries returns copies of all finalized deliveries in creation order.
func (w *Workflow) Deliveries() []*delivery.Delivery {
	return w.registry.List()
}

// DeliveryTotal returns the number of finalized deliveries.
func (w *Workflow) DeliveryTotal() int {
	return w.registry.Total()
}

// Clone returns an independent copy of the aggregate.
func (w *Workflow) Clone() *Workflow {
	c := &Workflow{
		draft:    w.draft.Clone(),
		registry: w.registry.Clone(),
		state:    w.state,
		editing:  w.editing,
	}
	if w.selectedCustomer != nil {
		id := *w.selectedCustomer
		c.selectedCustomer = &id
	}
	return c
}

func (w *Workflow) resetEdit() {
	w.state = Idle
	w.editing = 0
	w.selectedCustomer = nil
}
