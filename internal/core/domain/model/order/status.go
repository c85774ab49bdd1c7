package order

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Assigned ──> OutForDelivery ──> Delivered
//	   │            │            │               │
//	   └────────────┴────────────┴───────────────┴──────────> Cancelled
//
// Delivered and Cancelled are terminal: no outgoing transitions.
// Every non-terminal state has exactly one happy-path successor and an
// escape hatch to Cancelled; states may never be skipped.
//
// Status is a value object that validates state transitions and provides
// the wire names used by the API and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Orders in this status are waiting for admin confirmation.
	Pending

	// Confirmed indicates the order has been accepted and is being prepared.
	Confirmed

	// Assigned indicates the order has been handed to a delivery agent.
	Assigned

	// OutForDelivery indicates the order is on its way to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state; reaching it stamps the order's delivery date.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state reachable from every non-terminal status.
	Cancelled
)

// getStatusStrings returns the wire names for all Status values,
// including Unknown for display of invalid values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns the wire names of valid statuses only,
// used for validation and for parsing API input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getAllowedTransitions returns the authoritative transition map.
// Terminal statuses map to empty slices.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Assigned, Cancelled},
		Assigned:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a wire name ("pending", "out_for_delivery", ...) into
// a Status. Returns a ValueIsRequiredError for empty input and a
// ValueIsInvalidError for unrecognized names.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the six valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "confirmed", ...).
// Invalid values yield "unknown". Implements fmt.Stringer and is safe
// to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no outgoing transitions.
// Delivered and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedTransitions returns the statuses reachable from the current one
// according to the transition map. Terminal and invalid statuses yield an
// empty slice. The returned slice is a copy and safe to modify.
func (s Status) AllowedTransitions() []Status {
	allowed, ok := getAllowedTransitions()[s]
	if !ok {
		return []Status{}
	}

	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// AllStatuses returns every valid status in lifecycle order.
// Used to present the full status vocabulary alongside the allowed moves.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Assigned, OutForDelivery, Delivered, Cancelled}
}

// CanTransitionTo reports whether moving from the current status to next
// is a table-approved edge. Self-transitions are never allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from the current status to next and returns
// the new status. Returns a ValueIsInvalidError naming both the current and
// requested status if the edge is not in the transition map, including any
// transition out of a terminal status.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Confirmed)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("invalid status transition from %s to %s", s, next),
		)
	}

	return next, nil
}
