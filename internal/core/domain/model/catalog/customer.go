package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a delivery recipient from the customers reference collection.
//
// Address and phone are ordered sequences of display lines. Getters return
// copies, so a Customer handed to a delivery cannot be changed through the
// slices it exposes.
type Customer struct {
	id      kernel.RefID
	name    string
	address []string
	phone   []string
	notes   string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer. The id must be valid and the name non-blank;
// address, phone and notes may be empty.
func NewCustomer(id kernel.RefID, name string, address, phone []string, notes string) (Customer, error) {
	c := Customer{
		address: slices.Clone(address),
		phone:   slices.Clone(phone),
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate returns ErrCustomerIsNotConstructed for a zero value.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's reference identifier.
func (c Customer) ID() kernel.RefID {
	return c.id
}

// Name returns the display name.
func (c Customer) Name() string {
	return c.name
}

// Address returns a copy of the address lines.
func (c Customer) Address() []string {
	return slices.Clone(c.address)
}

// Phone returns a copy of the phone numbers.
func (c Customer) Phone() []string {
	return slices.Clone(c.phone)
}

// Notes returns the free-text notes, empty when none were given.
func (c Customer) Notes() string {
	return c.notes
}

// Label renders the customer the way selectors list it, e.g. "Alice (ID: 1)".
func (c Customer) Label() string {
	return fmt.Sprintf("%s (ID: %s)", c.name, c.id)
}

func (c *Customer) setID(id kernel.RefID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}
