// Package workflow holds the Workflow aggregate: the explicit, per-session
// state behind the delivery form.
//
// A Workflow owns the draft, the delivery registry and the edit cursor. It is
// a pure state-transition layer; lookups of customers and products happen
// before its methods are called, and rendering happens after.
//
// State transitions:
//
//	Idle ──StartEdit(n)──> Editing(n) ──Finalize──> Idle
//	  ^                      │  │
//	  └──────CancelEdit──────┘  └──RemoveDelivery(n)──> Idle (edit auto-cancelled)
//
// Every failing method leaves the aggregate unchanged.
package workflow
