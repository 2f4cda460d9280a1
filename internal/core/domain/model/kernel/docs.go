// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object identifying an order, assigned by the store
//   - ClientID: A value object identifying the client that placed an order
//
// Both identifiers are distinct types so that an order id can never be passed
// where a client id is expected. They enforce domain invariants and are
// immutable, making them suitable for concurrent use.
package kernel
