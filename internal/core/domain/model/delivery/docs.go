// Package delivery models what a user assembles and commits: line items, the
// draft they are collected in, and the registry of finalized deliveries.
//
// Key business rules:
//   - A line item quantity is always positive
//   - Adding a product already pending in the draft increases its quantity
//   - A delivery always has at least one line item
//   - Delivery numbers start at 1, grow monotonically and are never reused
//   - Appending to a delivery is a straight concatenation; existing items are
//     never merged, removed or changed
package delivery
