package catalog

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an entry of the products reference collection.
//
// Besides id and description a product may carry any number of descriptive
// attributes (unit, weight, sku...). They are kept verbatim so line items and
// re-serialized collections reproduce the source record.
type Product struct {
	id          kernel.RefID
	description string
	attributes  map[string]any

	guard guard.ConstructorGuard
}

// NewProduct creates a Product. The id must be valid and the description non-blank.
func NewProduct(id kernel.RefID, description string, attributes map[string]any) (Product, error) {
	p := Product{
		attributes: maps.Clone(attributes),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setDescription(description)); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate returns ErrProductIsNotConstructed for a zero value.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's reference identifier.
func (p Product) ID() kernel.RefID {
	return p.id
}

// Description returns the human-readable product description.
func (p Product) Description() string {
	return p.description
}

// Attributes returns a shallow copy of the extra reference attributes.
func (p Product) Attributes() map[string]any {
	return maps.Clone(p.attributes)
}

// Label renders the product the way selectors list it, e.g. "Widget (ID: 10)".
func (p Product) Label() string {
	return fmt.Sprintf("%s (ID: %s)", p.description, p.id)
}

func (p *Product) setID(id kernel.RefID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("product description")
	}

	p.description = description
	return nil
}
