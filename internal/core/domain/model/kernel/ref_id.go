package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

// ErrRefIDIsNotConstructed is returned when validating a zero-value RefID.
var ErrRefIDIsNotConstructed = errs.NewValueIsRequiredError("RefID must be created via NewRefID or RefIDFromInt")

// RefID identifies a customer or product inside its reference collection.
//
// Source files carry ids as strings or numbers and user selections always
// arrive as text, so two RefIDs are equal when their textual forms match:
// the number 1 and the string "1" name the same record. The original JSON
// kind is remembered only so that re-serialized collections keep their shape.
//
// Example:
//
//	id, err := kernel.NewRefID("10")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.IsEqual(kernel.RefIDFromInt(10))) // true
type RefID struct { //nolint:recvcheck // UnmarshalJSON needs a pointer receiver
	value   string
	numeric bool
	guard   guard.ConstructorGuard
}

// NewRefID creates a RefID from its textual form. Surrounding whitespace is
// ignored; a blank value is rejected.
func NewRefID(value string) (RefID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RefID{}, errs.NewValueIsRequiredError("reference id")
	}

	return RefID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// RefIDFromInt creates a numeric RefID.
func RefIDFromInt(n int64) RefID {
	return RefID{value: fmt.Sprintf("%d", n), numeric: true, guard: guard.NewConstructorGuard()}
}

// String returns the textual form used for comparison and display.
func (r RefID) String() string {
	return r.value
}

// IsEqual reports whether both ids have the same textual form.
func (r RefID) IsEqual(other RefID) bool {
	return r.value == other.value
}

// Validate returns ErrRefIDIsNotConstructed for a zero value.
func (r RefID) Validate() error {
	return r.guard.Validate(ErrRefIDIsNotConstructed)
}

// MarshalJSON writes the id back in the JSON kind it was read with.
func (r RefID) MarshalJSON() ([]byte, error) {
	if r.numeric {
		return []byte(r.value), nil
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (r *RefID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		id, err := NewRefID(s)
		if err != nil {
			return err
		}
		*r = id
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("reference id", fmt.Errorf("%s is neither a string nor a number", data))
	}

	id, err := NewRefID(n.String())
	if err != nil {
		return err
	}
	id.numeric = true
	*r = id
	return nil
}
