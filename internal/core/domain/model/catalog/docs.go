// Package catalog models the read-only reference data a delivery is assembled
// from: customers and products.
//
// Both are immutable value objects created once when reference data is loaded
// and never mutated during a session. A delivery keeps its own copy of the
// customer taken at commit time; later lookups never re-resolve it.
package catalog
