// Package render turns a booking draft into the widget's HTML. Renderers
// are pure functions of their inputs: the same draft, catalog, pets and
// availability always produce the same markup. Interactive elements carry
// data-action attributes that the embed script binds back to the wizard's
// action surface.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/internal/wizard"
)

// Page bundles everything a step render needs.
type Page struct {
	Theme      Theme
	Draft      wizard.Draft
	Services   []catalog.Service
	Pets       []*pets.Pet
	Calendar   schedule.MonthGrid
	Slots      []schedule.Slot
	Submitting bool
}

// Renderer renders wizard steps from parsed templates.
type Renderer struct {
	tpl *template.Template
}

// New parses the step templates.
func New() (*Renderer, error) {
	tpl := template.New("widget").Funcs(template.FuncMap{
		"formatPrice":  formatPrice,
		"formatDate":   formatDate,
		"monthTitle":   monthTitle,
		"sameDay":      sameDay,
		"stepProgress": stepProgress,
		"themeCSS":     themeCSS,
	})
	var err error
	for name, text := range stepTemplates {
		if tpl, err = tpl.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
	}
	return &Renderer{tpl: tpl}, nil
}

// RenderStep renders the draft's current step. When a step's prerequisites
// are missing the earliest unsatisfied step is rendered instead, so a stale
// draft never produces a broken view.
func (r *Renderer) RenderStep(page Page) ([]byte, error) {
	step := EffectiveStep(page.Draft)
	if step == wizard.StepError {
		return r.RenderError(page.Theme, page.Draft.ErrorMessage)
	}
	page.Draft.Step = step

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, templateFor(step), page); err != nil {
		return nil, fmt.Errorf("render: step %s: %w", step, err)
	}
	return buf.Bytes(), nil
}

// RenderError renders the error view with a retry control.
func (r *Renderer) RenderError(theme Theme, message string) ([]byte, error) {
	if message == "" {
		message = "Something went wrong. Please try again."
	}
	var buf bytes.Buffer
	err := r.tpl.ExecuteTemplate(&buf, "error", struct {
		Theme   Theme
		Message string
	}{Theme: theme, Message: message})
	if err != nil {
		return nil, fmt.Errorf("render: error view: %w", err)
	}
	return buf.Bytes(), nil
}

// EffectiveStep downgrades the draft's step to the earliest one whose
// prerequisites are satisfied.
func EffectiveStep(d wizard.Draft) wizard.Step {
	switch d.Step {
	case wizard.StepError:
		return wizard.StepError
	case wizard.StepConfirmation:
		if d.Confirmation == nil {
			return fallbackStep(d)
		}
		return wizard.StepConfirmation
	case wizard.StepDetails, wizard.StepPet, wizard.StepDatetime:
		return earliest(d, d.Step)
	default:
		return wizard.StepServices
	}
}

func fallbackStep(d wizard.Draft) wizard.Step {
	return earliest(d, wizard.StepDetails)
}

func earliest(d wizard.Draft, want wizard.Step) wizard.Step {
	if d.ServiceID == "" {
		return wizard.StepServices
	}
	if want == wizard.StepDatetime {
		return wizard.StepDatetime
	}
	if !d.HasDate() || d.SlotStart == "" {
		return wizard.StepDatetime
	}
	if want == wizard.StepPet {
		return wizard.StepPet
	}
	if d.PetID == "" {
		return wizard.StepPet
	}
	return want
}

func templateFor(step wizard.Step) string {
	switch step {
	case wizard.StepDatetime:
		return "datetime"
	case wizard.StepPet:
		return "pet"
	case wizard.StepDetails:
		return "details"
	case wizard.StepConfirmation:
		return "confirmation"
	case wizard.StepError:
		return "error"
	default:
		return "services"
	}
}

func formatPrice(m catalog.Money) string {
	return fmt.Sprintf("$%d.%02d", m.AmountCents/100, m.AmountCents%100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Monday, January 2, 2006")
}

func monthTitle(g schedule.MonthGrid) string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

func sameDay(a, b time.Time) bool {
	return !a.IsZero() && !b.IsZero() &&
		a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func stepProgress(current wizard.Step) []bool {
	order := []wizard.Step{wizard.StepServices, wizard.StepDatetime, wizard.StepPet, wizard.StepDetails, wizard.StepConfirmation}
	out := make([]bool, len(order))
	for i, s := range order {
		out[i] = s == current
		if s == current {
			break
		}
		out[i] = true
	}
	return out
}
