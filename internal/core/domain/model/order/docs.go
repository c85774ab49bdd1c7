// Package order provides domain entities and business logic for order management
// in the admin service. It implements the Order aggregate root with lifecycle
// management and validated status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, totals, and lifecycle
//   - Status: A state machine that enforces the order status transition table
//
// Key business rules:
//   - Orders enter the system in pending status
//   - Status follows the workflow pending -> confirmed -> assigned ->
//     out_for_delivery -> delivered, with cancellation possible from any
//     non-terminal status
//   - delivered and cancelled are terminal; no status may be skipped
//   - Reaching delivered stamps the delivery date from the engine's clock;
//     no other transition touches derived fields
//   - Transition notes are appended, preserving earlier annotations
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
