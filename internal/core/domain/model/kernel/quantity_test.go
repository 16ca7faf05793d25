package kernel_test

import (
	"encoding/json"
	"testing"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "minimum", value: 1},
		{name: "large", value: 100000},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.NewQuantity(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "is not greater than 0")
				return
			}
			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.value, q.Int())
		})
	}
}

func TestQuantity_Add(t *testing.T) {
	three, _ := kernel.NewQuantity(3)
	two, _ := kernel.NewQuantity(2)

	t.Run("should sum both operands", func(t *testing.T) {
		sum, err := three.Add(two)

		require.NoError(t, err)
		assert.Equal(t, 5, sum.Int())
		assert.Equal(t, 3, three.Int())
	})

	t.Run("should reject unconstructed operand", func(t *testing.T) {
		_, err := three.Add(kernel.Quantity{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestQuantity_JSON(t *testing.T) {
	q, _ := kernel.NewQuantity(4)
	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, "4", string(out))

	var back kernel.Quantity
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, 4, back.Int())

	require.Error(t, json.Unmarshal([]byte("0"), &back))
}
