package delivery_test

import (
	"testing"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_AddProduct(t *testing.T) {
	widget := mustProduct(t, 10, "Widget")
	gadget := mustProduct(t, 11, "Gadget")

	t.Run("same product accumulates into one line item", func(t *testing.T) {
		d := delivery.NewDraft()
		added := []int{3, 1, 4, 1, 5}
		sum := 0
		for _, v := range added {
			require.NoError(t, d.AddProduct(widget, mustQuantity(t, v)))
			sum += v
		}

		items := d.Snapshot()
		require.Len(t, items, 1)
		assert.True(t, items[0].ProductID().IsEqual(widget.ID()))
		assert.Equal(t, sum, items[0].Quantity().Int())
	})

	t.Run("new products keep insertion order", func(t *testing.T) {
		d := delivery.NewDraft()
		require.NoError(t, d.AddProduct(gadget, mustQuantity(t, 1)))
		require.NoError(t, d.AddProduct(widget, mustQuantity(t, 2)))
		require.NoError(t, d.AddProduct(gadget, mustQuantity(t, 1)))

		items := d.Snapshot()
		require.Len(t, items, 2)
		assert.Equal(t, "Gadget", items[0].Product().Description())
		assert.Equal(t, "Widget", items[1].Product().Description())
		assert.Equal(t, []int{2, 2}, quantities(items))
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		d := delivery.NewDraft()
		require.NoError(t, d.AddProduct(widget, mustQuantity(t, 1)))

		snap := d.Snapshot()
		require.NoError(t, d.AddProduct(widget, mustQuantity(t, 1)))

		assert.Equal(t, []int{1}, quantities(snap))
		assert.Equal(t, []int{2}, quantities(d.Snapshot()))
	})
}

func TestDraft_RemoveLineItem(t *testing.T) {
	products := []struct {
		id   int64
		name string
	}{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}}

	build := func(t *testing.T) *delivery.Draft {
		d := delivery.NewDraft()
		for _, p := range products {
			require.NoError(t, d.AddProduct(mustProduct(t, p.id, p.name), mustQuantity(t, 1)))
		}
		return d
	}

	descriptions := func(d *delivery.Draft) []string {
		var out []string
		for _, item := range d.Snapshot() {
			out = append(out, item.Product().Description())
		}
		return out
	}

	for position, want := range [][]string{
		{"B", "C", "D"},
		{"A", "C", "D"},
		{"A", "B", "D"},
		{"A", "B", "C"},
	} {
		d := build(t)
		require.NoError(t, d.RemoveLineItem(position))
		assert.Equal(t, want, descriptions(d))
	}

	t.Run("out of range positions fail and keep state", func(t *testing.T) {
		d := build(t)
		for _, position := range []int{-1, 4, 100} {
			err := d.RemoveLineItem(position)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.Equal(t, []string{"A", "B", "C", "D"}, descriptions(d))
	})
}

func TestDraft_SeedAndClear(t *testing.T) {
	widget := mustProduct(t, 10, "Widget")
	d := delivery.NewDraft()
	require.NoError(t, d.AddProduct(widget, mustQuantity(t, 9)))

	d.Seed([]delivery.LineItem{mustItem(t, widget, 3)})

	assert.True(t, d.IsEmpty())
	assert.Equal(t, []int{3}, quantities(d.Baseline()))

	require.NoError(t, d.AddProduct(widget, mustQuantity(t, 2)))
	assert.Equal(t, []int{2}, quantities(d.Snapshot()))
	assert.Equal(t, []int{3}, quantities(d.Baseline()))

	d.Clear()
	assert.True(t, d.IsEmpty())
	assert.Empty(t, d.Baseline())
}
