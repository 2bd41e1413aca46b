package wizard

import "errors"

var (
	// ErrUnknownService is returned when a selected offering id is not in the catalog.
	ErrUnknownService = errors.New("wizard: unknown service")
	// ErrNoServiceSelected is returned when a date is picked before an offering.
	ErrNoServiceSelected = errors.New("wizard: no service selected")
	// ErrNoDateSelected is returned when a time is picked before a date.
	ErrNoDateSelected = errors.New("wizard: no date selected")
	// ErrDateInPast is returned for dates strictly before today.
	ErrDateInPast = errors.New("wizard: date is in the past")
	// ErrSlotUnavailable is returned when the requested time is not bookable.
	ErrSlotUnavailable = errors.New("wizard: time slot unavailable")
	// ErrStepNotReachable is returned when a step's preconditions are unmet.
	ErrStepNotReachable = errors.New("wizard: step not reachable")
	// ErrInvalidCustomer is returned when the contact form fails validation.
	ErrInvalidCustomer = errors.New("wizard: invalid customer details")
	// ErrSubmitInFlight rejects a second submission while one is running.
	ErrSubmitInFlight = errors.New("wizard: submission already in flight")
)
