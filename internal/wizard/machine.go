package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// Deps wires the machine's collaborators.
type Deps struct {
	Services      []catalog.Service
	Pets          pets.Repository
	Availability  schedule.AvailabilityProvider
	Submitter     booking.Submitter
	SubmitTimeout time.Duration
	Logger        *logging.Logger
	Now           func() time.Time
}

// Machine holds the single booking draft and applies validated transitions.
// All methods are safe for concurrent use; only one submission can be in
// flight at a time.
type Machine struct {
	mu         sync.Mutex
	draft      Draft
	submitting bool

	services      map[string]catalog.Service
	pets          pets.Repository
	availability  schedule.AvailabilityProvider
	submitter     booking.Submitter
	submitTimeout time.Duration
	validate      *validator.Validate
	logger        *logging.Logger
	now           func() time.Time
}

// New creates a machine positioned on the services step.
func New(deps Deps) *Machine {
	if deps.Pets == nil {
		panic("wizard: pet repository required")
	}
	if deps.Availability == nil {
		panic("wizard: availability provider required")
	}
	if deps.Submitter == nil {
		panic("wizard: submitter required")
	}
	if deps.SubmitTimeout <= 0 {
		deps.SubmitTimeout = 10 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	services := make(map[string]catalog.Service, len(deps.Services))
	for _, svc := range deps.Services {
		services[svc.ID] = svc
	}

	return &Machine{
		draft:         Draft{Step: StepServices},
		services:      services,
		pets:          deps.Pets,
		availability:  deps.Availability,
		submitter:     deps.Submitter,
		submitTimeout: deps.SubmitTimeout,
		validate:      validator.New(),
		logger:        deps.Logger,
		now:           deps.Now,
	}
}

// Snapshot returns a copy of the current draft for rendering.
func (m *Machine) Snapshot() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Submitting reports whether a submission is in flight; renderers disable
// the submit control while true.
func (m *Machine) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// SelectService sets the offering and advances to the datetime step.
func (m *Machine) SelectService(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.services[id]; !ok {
		return ErrUnknownService
	}
	m.draft.ServiceID = id
	m.draft.Step = StepDatetime
	m.logger.Debug("service selected", "service_id", id)
	return nil
}

// SelectDate sets the date and clears any previously chosen time. The step
// does not advance; the visitor still has to pick a slot.
func (m *Machine) SelectDate(ctx context.Context, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.ServiceID == "" {
		return ErrNoServiceSelected
	}
	day := midnight(date)
	if day.Before(midnight(m.now())) {
		return ErrDateInPast
	}
	m.draft.Date = day
	m.draft.SlotStart = ""
	return nil
}

// SelectTime sets the time slot after checking it is actually bookable.
func (m *Machine) SelectTime(ctx context.Context, slotStart string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.draft.HasDate() {
		return ErrNoDateSelected
	}

	slots, err := m.availability.Slots(ctx, m.draft.ServiceID, m.draft.Date)
	if err != nil {
		return fmt.Errorf("wizard: load availability: %w", err)
	}
	for _, slot := range slots {
		if slot.Start == slotStart && slot.Available {
			m.draft.SlotStart = slotStart
			return nil
		}
	}
	return ErrSlotUnavailable
}

// SelectPet sets the pet and hides the new-pet form.
func (m *Machine) SelectPet(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.pets.GetByID(ctx, id); err != nil {
		return err
	}
	m.draft.PetID = id
	m.draft.NewPetFormVisible = false
	return nil
}

// AddNewPet shows the new-pet form.
func (m *Machine) AddNewPet() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.NewPetFormVisible = true
}

// CancelNewPet hides the new-pet form without saving.
func (m *Machine) CancelNewPet() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.NewPetFormVisible = false
}

// SaveNewPet validates and appends a pet, selects it and hides the form.
// On validation failure nothing changes.
func (m *Machine) SaveNewPet(ctx context.Context, req *pets.AddPetRequest) (*pets.Pet, error) {
	pet, err := m.pets.Add(ctx, req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.PetID = pet.ID
	m.draft.NewPetFormVisible = false
	m.logger.Debug("pet added", "pet_id", pet.ID, "name", pet.Name)
	return pet, nil
}

// SetCustomer merges the contact form fields into the draft. Validation is
// deferred to SubmitBooking.
func (m *Machine) SetCustomer(c Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Customer = c
}

// GoToStep moves to the requested step if its preconditions hold. The guard
// lives here rather than in the rendered controls, so direct calls cannot
// skip required selections.
func (m *Machine) GoToStep(step Step) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.canEnter(step) {
		return fmt.Errorf("%w: %s", ErrStepNotReachable, step)
	}
	m.draft.Step = step
	return nil
}

func (m *Machine) canEnter(step Step) bool {
	switch step {
	case StepServices:
		return true
	case StepDatetime:
		return m.draft.ServiceID != ""
	case StepPet:
		return m.draft.ServiceID != "" && m.draft.HasDate() && m.draft.SlotStart != ""
	case StepDetails:
		return m.draft.ServiceID != "" && m.draft.HasDate() && m.draft.SlotStart != "" && m.draft.PetID != ""
	case StepConfirmation:
		return m.draft.Confirmation != nil
	default:
		return false
	}
}

// SubmitBooking validates the customer details and hands the draft to the
// submitter. The submission is timeout-bounded and guarded against double
// submit; on success the wizard lands on the confirmation step.
func (m *Machine) SubmitBooking(ctx context.Context) (*booking.Confirmation, error) {
	m.mu.Lock()
	if !m.canEnter(StepDetails) {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrStepNotReachable, StepDetails)
	}
	if m.submitting {
		m.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if err := m.validate.Struct(m.draft.Customer); err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	svc := m.services[m.draft.ServiceID]
	req := booking.Request{
		ServiceID:    m.draft.ServiceID,
		ServiceTitle: svc.Title,
		Date:         m.draft.Date,
		SlotStart:    m.draft.SlotStart,
		PetID:        m.draft.PetID,
		FirstName:    m.draft.Customer.FirstName,
		LastName:     m.draft.Customer.LastName,
		Email:        m.draft.Customer.Email,
		Phone:        m.draft.Customer.Phone,
	}
	m.submitting = true
	m.mu.Unlock()

	if pet, err := m.pets.GetByID(ctx, req.PetID); err == nil {
		req.PetName = pet.Name
	}

	ctx, cancel := context.WithTimeout(ctx, m.submitTimeout)
	defer cancel()
	conf, err := m.submitter.Submit(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.logger.Error("booking submission failed", "error", err, "service_id", req.ServiceID)
		return nil, fmt.Errorf("wizard: submit booking: %w", err)
	}

	m.draft.Confirmation = conf
	m.draft.Step = StepConfirmation
	m.logger.Info("booking confirmed",
		"code", conf.Code,
		"service_id", req.ServiceID,
		"pet_id", req.PetID,
	)
	return conf, nil
}

// StartNewBooking discards the draft and returns to the services step. The
// session's pet list survives; only the selections reset.
func (m *Machine) StartNewBooking() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = Draft{Step: StepServices}
}

// Fail moves the wizard to the terminal error state. The only way out is a
// retry that re-runs bootstrap, or a full reset.
func (m *Machine) Fail(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Step = StepError
	m.draft.ErrorMessage = message
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
