package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pawdesk/booking-widget/internal/apiclient"
	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/render"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/internal/wizard"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// ErrNotReady is returned when an action arrives before bootstrap finished.
var ErrNotReady = errors.New("widget: not initialized")

// BookingAPI is the slice of the widget API the instance needs.
type BookingAPI interface {
	RequestToken(ctx context.Context, origin string, custom apiclient.Customization) (string, error)
	LoadServices(ctx context.Context, token string) ([]catalog.Service, error)
}

// Deps are the widget's collaborators. Client may be nil, in which case one
// is built from the resolved configuration.
type Deps struct {
	Client        BookingAPI
	Pets          pets.Repository
	Availability  schedule.AvailabilityProvider
	Submitter     booking.Submitter
	SubmitTimeout time.Duration
	Logger        *logging.Logger
	Now           func() time.Time
}

// Widget is one embedded booking widget instance: configuration, session
// token, catalog and the wizard machine behind the public action surface.
type Widget struct {
	cfg      *Configuration
	client   BookingAPI
	renderer *render.Renderer
	theme    render.Theme
	logger   *logging.Logger
	now      func() time.Time

	deps Deps

	mu       sync.RWMutex
	machine  *wizard.Machine
	services []catalog.Service
	token    string
	ready    bool
	lastErr  string
}

// New resolves the embed options and builds an uninitialized widget.
// Init must be called before actions are accepted.
func New(opts EmbedOptions, deps Deps) (*Widget, error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	if deps.Pets == nil {
		deps.Pets = pets.NewInMemoryRepository(nil)
	}
	if deps.Availability == nil {
		deps.Availability = schedule.NewDemoProvider(9, 17, 30*time.Minute)
	}
	if deps.Submitter == nil {
		deps.Submitter = booking.NewSimulatedSubmitter(1500 * time.Millisecond)
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Client == nil {
		deps.Client = apiclient.New(cfg.APIBaseURL, cfg.APIKey, cfg.SigningSecret, deps.Logger)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	return &Widget{
		cfg:      cfg,
		client:   deps.Client,
		renderer: renderer,
		theme:    render.ThemeFromCustomization(cfg.Customization),
		logger:   deps.Logger,
		now:      deps.Now,
		deps:     deps,
	}, nil
}

// Init runs the bootstrap sequence: token exchange, then catalog load, then
// the first wizard instance. On failure the widget lands in the error view
// and the catalog is never requested; Retry re-runs the whole sequence.
func (w *Widget) Init(ctx context.Context) error {
	token, err := w.client.RequestToken(ctx, w.cfg.Origin, w.cfg.Customization)
	if err != nil {
		w.fail("We couldn't start the booking widget. Please try again.")
		w.logger.Error("token exchange failed", "error", err)
		return fmt.Errorf("widget: request token: %w", err)
	}

	services, err := w.client.LoadServices(ctx, token)
	if err != nil {
		w.fail("We couldn't load available services. Please try again.")
		w.logger.Error("catalog load failed", "error", err)
		return fmt.Errorf("widget: load services: %w", err)
	}

	machine := wizard.New(wizard.Deps{
		Services:      services,
		Pets:          w.deps.Pets,
		Availability:  w.deps.Availability,
		Submitter:     w.deps.Submitter,
		SubmitTimeout: w.deps.SubmitTimeout,
		Logger:        w.logger,
		Now:           w.now,
	})

	w.mu.Lock()
	w.token = token
	w.services = services
	w.machine = machine
	w.ready = true
	w.lastErr = ""
	w.mu.Unlock()

	w.logger.Info("widget initialized", "services", len(services), "container_id", w.cfg.ContainerID)
	return nil
}

// Retry restarts bootstrap after a failure.
func (w *Widget) Retry(ctx context.Context) error {
	return w.Init(ctx)
}

func (w *Widget) fail(message string) {
	w.mu.Lock()
	w.ready = false
	w.lastErr = message
	w.mu.Unlock()
}

// Ready reports whether bootstrap completed.
func (w *Widget) Ready() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ready
}

// Token returns the session token obtained at bootstrap.
func (w *Widget) Token() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.token
}

// Machine exposes the wizard for hosts that drive it directly.
func (w *Widget) Machine() (*wizard.Machine, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.ready {
		return nil, ErrNotReady
	}
	return w.machine, nil
}

// SelectService is part of the public action surface.
func (w *Widget) SelectService(ctx context.Context, id string) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	return m.SelectService(ctx, id)
}

// SelectDate is part of the public action surface.
func (w *Widget) SelectDate(ctx context.Context, date time.Time) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	return m.SelectDate(ctx, date)
}

// SelectTime is part of the public action surface.
func (w *Widget) SelectTime(ctx context.Context, slotStart string) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	return m.SelectTime(ctx, slotStart)
}

// SelectPet is part of the public action surface.
func (w *Widget) SelectPet(ctx context.Context, id string) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	return m.SelectPet(ctx, id)
}

// AddNewPet is part of the public action surface.
func (w *Widget) AddNewPet() error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	m.AddNewPet()
	return nil
}

// CancelNewPet is part of the public action surface.
func (w *Widget) CancelNewPet() error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	m.CancelNewPet()
	return nil
}

// SaveNewPet is part of the public action surface.
func (w *Widget) SaveNewPet(ctx context.Context, req *pets.AddPetRequest) (*pets.Pet, error) {
	m, err := w.Machine()
	if err != nil {
		return nil, err
	}
	return m.SaveNewPet(ctx, req)
}

// SetCustomer is part of the public action surface.
func (w *Widget) SetCustomer(c wizard.Customer) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	m.SetCustomer(c)
	return nil
}

// GoToStep is part of the public action surface.
func (w *Widget) GoToStep(step wizard.Step) error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	return m.GoToStep(step)
}

// SubmitBooking is part of the public action surface.
func (w *Widget) SubmitBooking(ctx context.Context) (*booking.Confirmation, error) {
	m, err := w.Machine()
	if err != nil {
		return nil, err
	}
	return m.SubmitBooking(ctx)
}

// StartNewBooking is part of the public action surface.
func (w *Widget) StartNewBooking() error {
	m, err := w.Machine()
	if err != nil {
		return err
	}
	m.StartNewBooking()
	return nil
}

// Render produces the widget's current HTML: the error view after a failed
// bootstrap, otherwise the draft's current step.
func (w *Widget) Render(ctx context.Context) ([]byte, error) {
	w.mu.RLock()
	ready := w.ready
	lastErr := w.lastErr
	machine := w.machine
	services := w.services
	w.mu.RUnlock()

	if !ready {
		return w.renderer.RenderError(w.theme, lastErr)
	}

	draft := machine.Snapshot()
	page := render.Page{
		Theme:      w.theme,
		Draft:      draft,
		Services:   services,
		Calendar:   schedule.BuildMonthGrid(w.now()),
		Submitting: machine.Submitting(),
	}

	if list, err := w.deps.Pets.List(ctx); err == nil {
		page.Pets = list
	}
	if draft.HasDate() && w.deps.Availability != nil {
		if slots, err := w.deps.Availability.Slots(ctx, draft.ServiceID, draft.Date); err == nil {
			page.Slots = slots
		}
	}

	return w.renderer.RenderStep(page)
}
