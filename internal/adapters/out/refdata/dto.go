// Package refdata loads the customers and products reference collections
// from a static source and serves lookups from the session cache.
package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
)

// CustomerDTO is one record of customers.json.
type CustomerDTO struct {
	ID      kernel.RefID `json:"id"`
	Name    string       `json:"name"`
	Address []string     `json:"address"`
	Phone   []string     `json:"phone"`
	Notes   string       `json:"notes,omitempty"`
}

func (dto CustomerDTO) toDomain() (catalog.Customer, error) {
	return catalog.NewCustomer(dto.ID, dto.Name, dto.Address, dto.Phone, dto.Notes)
}

func customerFromDomain(c catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
		Notes:   c.Notes(),
	}
}

// ProductDTO is one record of products.json. Fields other than id and
// description are kept in Attributes.
type ProductDTO struct {
	ID          kernel.RefID
	Description string
	Attributes  map[string]any
}

// UnmarshalJSON splits the record into the known fields and the attributes.
func (dto *ProductDTO) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := dto.ID.UnmarshalJSON(raw["id"]); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	if desc, ok := raw["description"]; ok {
		if err := json.Unmarshal(desc, &dto.Description); err != nil {
			return fmt.Errorf("product description: %w", err)
		}
	}

	delete(raw, "id")
	delete(raw, "description")
	dto.Attributes = make(map[string]any, len(raw))
	for k, v := range raw {
		var value any
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("product attribute %q: %w", k, err)
		}
		dto.Attributes[k] = value
	}
	return nil
}

// MarshalJSON writes the record back as a flat object.
func (dto ProductDTO) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(dto.Attributes)+2)
	maps.Copy(out, dto.Attributes)
	out["id"] = dto.ID
	out["description"] = dto.Description
	return json.Marshal(out)
}

func (dto ProductDTO) toDomain() (catalog.Product, error) {
	return catalog.NewProduct(dto.ID, dto.Description, dto.Attributes)
}

func productFromDomain(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Description: p.Description(),
		Attributes:  p.Attributes(),
	}
}

// decodeCustomers parses a customers JSON array. Ids must be unique.
func decodeCustomers(data []byte) (catalog.Customers, error) {
	var dtos []CustomerDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}

	customers := make(catalog.Customers, 0, len(dtos))
	seen := make(map[string]struct{}, len(dtos))
	for i, dto := range dtos {
		c, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("customer #%d: %w", i, err)
		}
		if _, dup := seen[c.ID().String()]; dup {
			return nil, fmt.Errorf("customer #%d: duplicate id %s", i, c.ID())
		}
		seen[c.ID().String()] = struct{}{}
		customers = append(customers, c)
	}
	return customers, nil
}

// decodeProducts parses a products JSON array. Ids must be unique.
func decodeProducts(data []byte) (catalog.Products, error) {
	var dtos []ProductDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}

	products := make(catalog.Products, 0, len(dtos))
	seen := make(map[string]struct{}, len(dtos))
	for i, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("product #%d: %w", i, err)
		}
		if _, dup := seen[p.ID().String()]; dup {
			return nil, fmt.Errorf("product #%d: duplicate id %s", i, p.ID())
		}
		seen[p.ID().String()] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}

func encodeCustomers(customers catalog.Customers) (string, error) {
	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, customerFromDomain(c))
	}
	data, err := json.Marshal(dtos)
	return string(data), err
}

func encodeProducts(products catalog.Products) (string, error) {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, productFromDomain(p))
	}
	data, err := json.Marshal(dtos)
	return string(data), err
}
