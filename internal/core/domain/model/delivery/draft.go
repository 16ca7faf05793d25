package delivery

import (
	"errors"
	"slices"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
)

// Draft collects the line items of the delivery being assembled.
//
// A draft has two parts:
//   - pending items, which the user adds and removes and which Finalize commits
//   - a read-only baseline, the copy of a delivery's items placed in the draft
//     when that delivery is opened for editing
//
// Only pending items take part in quantity merging and in commits, so editing
// a delivery holding {Widget x3} and adding Widget x2 appends a second line
// {Widget x2} instead of rewriting the first one.
type Draft struct {
	baseline []LineItem
	items    []LineItem
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// AddProduct adds quantity units of product to the pending items. If a pending
// line item already holds the product its quantity is increased; otherwise a
// new line item is appended.
func (d *Draft) AddProduct(product catalog.Product, quantity kernel.Quantity) error {
	for i, item := range d.items {
		if !item.ProductID().IsEqual(product.ID()) {
			continue
		}

		updated, err := item.withAdded(quantity)
		if err != nil {
			return err
		}
		d.items[i] = updated
		return nil
	}

	item, err := NewLineItem(product, quantity)
	if err != nil {
		return err
	}

	d.items = append(d.items, item)
	return nil
}

// RemoveLineItem deletes the pending item at the 0-based position, keeping the
// relative order of the others. An out-of-range position fails with
// errs.ErrValueIsOutOfRange and leaves the draft unchanged.
func (d *Draft) RemoveLineItem(position int) error {
	if position < 0 || position >= len(d.items) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"position", position, 0, len(d.items)-1,
			errors.New("no pending line item at this position"),
		)
	}

	d.items = slices.Delete(d.items, position, position+1)
	return nil
}

// Seed replaces the whole draft with a baseline copied from items and no
// pending items.
func (d *Draft) Seed(items []LineItem) {
	d.baseline = slices.Clone(items)
	d.items = nil
}

// Clear empties both pending items and baseline.
func (d *Draft) Clear() {
	d.baseline = nil
	d.items = nil
}

// Snapshot returns a copy of the pending items in insertion order.
func (d *Draft) Snapshot() []LineItem {
	return slices.Clone(d.items)
}

// Baseline returns a copy of the items seeded from the delivery being edited.
func (d *Draft) Baseline() []LineItem {
	return slices.Clone(d.baseline)
}

// IsEmpty reports whether there is nothing to commit.
func (d *Draft) IsEmpty() bool {
	return len(d.items) == 0
}

// Clone returns an independent copy of the draft.
func (d *Draft) Clone() *Draft {
	return &Draft{
		baseline: slices.Clone(d.baseline),
		items:    slices.Clone(d.items),
	}
}
