package kernel

import (
	"encoding/json"
	"errors"
	"fmt"

	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a strictly positive number of units of one product.
type Quantity struct { //nolint:recvcheck // UnmarshalJSON needs a pointer receiver
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. Values lower than 1 are rejected.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Int returns the number of units.
func (q Quantity) Int() int {
	return q.value
}

// Add returns the sum of both quantities. Both operands must be valid.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := errors.Join(q.Validate(), other.Validate()); err != nil {
		return Quantity{}, err
	}

	return NewQuantity(q.value + other.value)
}

// Validate returns ErrQuantityIsNotConstructed for a zero value.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// MarshalJSON writes the quantity as a plain JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.value)
}

// UnmarshalJSON reads a JSON number through NewQuantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	parsed, err := NewQuantity(v)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
