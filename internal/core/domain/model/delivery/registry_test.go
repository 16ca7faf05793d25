package delivery_test

import (
	"testing"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	widget := mustProduct(t, 10, "Widget")
	customer := mustCustomer(t)
	items := func() []delivery.LineItem { return []delivery.LineItem{mustItem(t, widget, 1)} }

	t.Run("numbers are monotonic and never reused", func(t *testing.T) {
		r := delivery.NewRegistry()
		first, err := r.Create(customer, items())
		require.NoError(t, err)
		second, err := r.Create(customer, items())
		require.NoError(t, err)
		require.NoError(t, r.Remove(second.Number()))

		third, err := r.Create(customer, items())
		require.NoError(t, err)

		assert.Equal(t, 1, first.Number())
		assert.Equal(t, 2, second.Number())
		assert.Equal(t, 3, third.Number())
		assert.Equal(t, 2, r.Total())
	})

	t.Run("failed create does not consume a number", func(t *testing.T) {
		r := delivery.NewRegistry()
		_, err := r.Create(customer, nil)
		require.ErrorIs(t, err, delivery.ErrEmptyDelivery)

		d, err := r.Create(customer, items())
		require.NoError(t, err)
		assert.Equal(t, 1, d.Number())
	})

	t.Run("remove keeps other numbers stable", func(t *testing.T) {
		r := delivery.NewRegistry()
		for range 3 {
			_, err := r.Create(customer, items())
			require.NoError(t, err)
		}

		require.NoError(t, r.Remove(1))

		var numbers []int
		for _, d := range r.List() {
			numbers = append(numbers, d.Number())
		}
		assert.Equal(t, []int{2, 3}, numbers)
		_, err := r.Get(3)
		require.NoError(t, err)
	})

	t.Run("unknown numbers are not found", func(t *testing.T) {
		r := delivery.NewRegistry()

		_, err := r.Get(1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, r.Remove(1), errs.ErrObjectNotFound)
		_, err = r.Append(1, items())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("list and clone are copies", func(t *testing.T) {
		r := delivery.NewRegistry()
		_, err := r.Create(customer, items())
		require.NoError(t, err)

		clone := r.Clone()
		_, err = clone.Append(1, items())
		require.NoError(t, err)
		_, err = clone.Create(customer, items())
		require.NoError(t, err)

		original, _ := r.Get(1)
		assert.Len(t, original.Items(), 1)
		assert.Equal(t, 1, r.Total())
		assert.Equal(t, 2, clone.Total())
	})
}
