package booking

import (
	"fmt"

	"ratefinder/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
//
// State transitions:
//
//	Created ──> Confirmed
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Created is the initial status. The quoted rate is held but not yet
	// accepted by the operator.
	Created

	// Confirmed means the operator accepted the booking.
	Confirmed

	// Cancelled is final.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:   "Unknown",
	Created:   "Created",
	Confirmed: "Confirmed",
	Cancelled: "Cancelled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s != Created && s != Confirmed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Confirm transitions Created to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Created {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s),
		)
	}
	return Confirmed, nil
}

// Cancel transitions Created or Confirmed to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Confirmed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Cancelled, nil
}

func (s Status) IsFinal() bool {
	return s == Cancelled
}
