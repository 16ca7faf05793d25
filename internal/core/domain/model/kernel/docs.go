// Package kernel provides the value objects shared by the catalog, delivery
// and workflow models.
//
// The package includes:
//   - RefID: the identifier of a reference record (customer or product), which
//     arrives in source data as either a JSON string or a JSON number
//   - Quantity: a strictly positive item count
//
// Both are immutable and must be created through their constructors; zero
// values fail Validate.
package kernel
