// Package wizard owns the booking draft and the step transitions of the
// widget. Every mutation goes through the Machine, which validates step
// preconditions inside the transition itself; callers cannot skip ahead of
// their selections no matter which entry point they use.
package wizard

import (
	"time"

	"github.com/pawdesk/booking-widget/internal/booking"
)

// Step is one stage of the linear wizard.
type Step string

const (
	StepServices     Step = "services"
	StepDatetime     Step = "datetime"
	StepPet          Step = "pet"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
	StepError        Step = "error"
)

// Customer is the contact form, accumulated incrementally as the visitor
// types. Validation happens at submission, not on every keystroke.
type Customer struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

// Draft is the booking-in-progress. Exactly one draft exists per widget
// instance; it drives every render and is discarded on reset.
type Draft struct {
	Step              Step                  `json:"step"`
	ServiceID         string                `json:"service_id"`
	Date              time.Time             `json:"date"`       // zero = unselected, always midnight
	SlotStart         string                `json:"slot_start"` // "" = unselected, "15:04" label
	PetID             string                `json:"pet_id"`
	Customer          Customer              `json:"customer"`
	NewPetFormVisible bool                  `json:"new_pet_form_visible"`
	Confirmation      *booking.Confirmation `json:"confirmation,omitempty"`
	ErrorMessage      string                `json:"error_message,omitempty"`
}

// HasDate reports whether a date has been selected.
func (d Draft) HasDate() bool { return !d.Date.IsZero() }
