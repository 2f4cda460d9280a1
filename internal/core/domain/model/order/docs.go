// Package order implements the order aggregate and its status workflow.
//
// The package contains:
//   - Order: The aggregate root tracking a purchase request through its lifecycle
//   - Status: The fixed, totally ordered workflow with forward-only transitions
//   - HistoryEntry: The immutable record of a status held at a point in time
//
// Orders are created in Received status, receive their identifier from the
// relational store, and only move forward along the workflow. The aggregate
// enforces these invariants itself; persistence and messaging concerns live
// in the adapters.
package order
