package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose transitions are monotonic forward, with cancellation as the
// only sideways move:
//
//	pending ──> confirmed ──> paid ──> shipped
//	   │            │          │
//	   └────────────┴──────────┴──> cancelled
//
// Shipped orders cannot be cancelled. Status values validate transitions
// themselves; the aggregate applies the returned status only on success.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order.
	Pending

	// Confirmed indicates the customer confirmed the order.
	Confirmed

	// Paid indicates payment was received for the order.
	Paid

	// Shipped indicates the order left the warehouse. Final state.
	Shipped

	// Cancelled indicates the order was cancelled before shipping. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status name as stored in persistence or carried
// in event payloads. Unknown names fail validation.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the lowercase name of the status, "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// Confirm transitions the status to Confirmed. Legal only from Pending.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// MarkPaid transitions the status to Paid. Legal from Pending or Confirmed.
func (s Status) MarkPaid() (Status, error) {
	if s != Pending && s != Confirmed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Paid.String())
	}
	return Paid, nil
}

// MarkShipped transitions the status to Shipped. Legal only from Paid.
func (s Status) MarkShipped() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Shipped.String())
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled. Shipped orders cannot be
// cancelled; every other state can.
func (s Status) Cancel() (Status, error) {
	if s == Shipped {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
