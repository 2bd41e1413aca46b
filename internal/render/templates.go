package render

import (
	"fmt"
	"html/template"
)

func themeCSS(t Theme) template.CSS {
	return template.CSS(fmt.Sprintf(
		":root{--pd-primary:%s;--pd-text:%s;--pd-font:%s;--pd-radius:%s;}",
		t.PrimaryColor, t.TextColor, t.FontFamily, t.BorderRadius,
	))
}

var stepTemplates = map[string]string{
	"progress": `<div class="pd-progress">
{{- range stepProgress .Draft.Step }}<span class="pd-progress-step{{ if . }} pd-done{{ end }}"></span>{{ end -}}
</div>`,

	"shell_open": `<div class="pd-widget" data-step="{{ .Draft.Step }}">
<style>{{ themeCSS .Theme }}</style>
{{ template "progress" . }}`,

	"services": `{{ template "shell_open" . }}
<div class="pd-step-header">
  <div class="pd-step-label">Step 1 of 5</div>
  <h2 class="pd-step-title">Choose a service</h2>
</div>
<ul class="pd-service-list">
{{- range .Services }}
  <li class="pd-service{{ if eq .ID $.Draft.ServiceID }} pd-selected{{ end }}"
      data-action="select-service" data-service-id="{{ .ID }}">
    <span class="pd-service-title">{{ .Title }}</span>
    <span class="pd-service-meta">{{ .Category }} · {{ .DurationMin }} min · {{ formatPrice .Price }}</span>
  </li>
{{- end }}
</ul>
</div>`,

	"datetime": `{{ template "shell_open" . }}
<div class="pd-step-header">
  <div class="pd-step-label">Step 2 of 5</div>
  <h2 class="pd-step-title">Pick a date &amp; time</h2>
</div>
<div class="pd-calendar">
  <div class="pd-calendar-title">{{ monthTitle .Calendar }}</div>
  <table class="pd-calendar-grid">
    <thead><tr><th>Su</th><th>Mo</th><th>Tu</th><th>We</th><th>Th</th><th>Fr</th><th>Sa</th></tr></thead>
    <tbody>
    {{- range .Calendar.Weeks }}
      <tr>
      {{- range . }}
        {{- if .Blank }}<td class="pd-day pd-blank"></td>
        {{- else if .Disabled }}<td class="pd-day pd-disabled">{{ .Number }}</td>
        {{- else }}<td class="pd-day{{ if sameDay .Date $.Draft.Date }} pd-selected{{ end }}"
            data-action="select-date" data-date="{{ .Date.Format "2006-01-02" }}">{{ .Number }}</td>
        {{- end }}
      {{- end }}
      </tr>
    {{- end }}
    </tbody>
  </table>
</div>
{{- if .Draft.HasDate }}
<div class="pd-slots">
{{- range .Slots }}
  {{- if .Available }}
  <button class="pd-slot{{ if eq .Start $.Draft.SlotStart }} pd-selected{{ end }}"
          data-action="select-time" data-time="{{ .Start }}">{{ .Start }}</button>
  {{- else }}
  <button class="pd-slot pd-unavailable" disabled>{{ .Start }}</button>
  {{- end }}
{{- end }}
</div>
{{- end }}
<div class="pd-nav">
  <button class="pd-back" data-action="go-to-step" data-step="services">Back</button>
  <button class="pd-next" data-action="go-to-step" data-step="pet"
          {{ if or (not .Draft.HasDate) (eq .Draft.SlotStart "") }}disabled{{ end }}>Continue</button>
</div>
</div>`,

	"pet": `{{ template "shell_open" . }}
<div class="pd-step-header">
  <div class="pd-step-label">Step 3 of 5</div>
  <h2 class="pd-step-title">Who's coming in?</h2>
</div>
<ul class="pd-pet-list">
{{- range .Pets }}
  <li class="pd-pet{{ if eq .ID $.Draft.PetID }} pd-selected{{ end }}"
      data-action="select-pet" data-pet-id="{{ .ID }}">
    <span class="pd-pet-icon">{{ .DisplayIcon }}</span>
    <span class="pd-pet-name">{{ .Name }}</span>
    <span class="pd-pet-meta">{{ .Breed }}, {{ .AgeYears }} yrs</span>
  </li>
{{- end }}
</ul>
{{- if .Draft.NewPetFormVisible }}
<form class="pd-new-pet" data-action="save-new-pet">
  <input name="name" placeholder="Name" required>
  <input name="breed" placeholder="Breed" required>
  <input name="age_years" type="number" min="1" placeholder="Age (years)" required>
  <input name="weight_lbs" type="number" placeholder="Weight (lbs, optional)">
  <textarea name="notes" placeholder="Notes (optional)"></textarea>
  <button type="submit">Save pet</button>
  <button type="button" data-action="cancel-new-pet">Cancel</button>
</form>
{{- else }}
<button class="pd-add-pet" data-action="add-new-pet">+ Add a new pet</button>
{{- end }}
<div class="pd-nav">
  <button class="pd-back" data-action="go-to-step" data-step="datetime">Back</button>
  <button class="pd-next" data-action="go-to-step" data-step="details"
          {{ if eq .Draft.PetID "" }}disabled{{ end }}>Continue</button>
</div>
</div>`,

	"details": `{{ template "shell_open" . }}
<div class="pd-step-header">
  <div class="pd-step-label">Step 4 of 5</div>
  <h2 class="pd-step-title">Your details</h2>
</div>
<div class="pd-summary">
  <span>{{ formatDate .Draft.Date }} at {{ .Draft.SlotStart }}</span>
</div>
<form class="pd-details-form" data-action="submit-booking">
  <input name="first_name" placeholder="First name" value="{{ .Draft.Customer.FirstName }}" required>
  <input name="last_name" placeholder="Last name" value="{{ .Draft.Customer.LastName }}">
  <input name="email" type="email" placeholder="Email" value="{{ .Draft.Customer.Email }}" required>
  <input name="phone" type="tel" placeholder="Phone" value="{{ .Draft.Customer.Phone }}" required>
  <button type="submit" class="pd-submit" {{ if .Submitting }}disabled{{ end }}>
    {{- if .Submitting }}Booking…{{ else }}Confirm booking{{ end -}}
  </button>
</form>
<div class="pd-nav">
  <button class="pd-back" data-action="go-to-step" data-step="pet" {{ if .Submitting }}disabled{{ end }}>Back</button>
</div>
</div>`,

	"confirmation": `{{ template "shell_open" . }}
<div class="pd-step-header">
  <div class="pd-step-label">Step 5 of 5</div>
  <h2 class="pd-step-title">You're booked!</h2>
</div>
<div class="pd-confirmation">
  <div class="pd-confirmation-code">{{ .Draft.Confirmation.Code }}</div>
  <p>{{ formatDate .Draft.Confirmation.ScheduledOn }} at {{ .Draft.Confirmation.SlotStart }}</p>
</div>
<button class="pd-restart" data-action="start-new-booking">Start a new booking</button>
</div>`,

	"error": `<div class="pd-widget" data-step="error">
<style>{{ themeCSS .Theme }}</style>
<div class="pd-error">
  <p class="pd-error-message">{{ .Message }}</p>
  <button class="pd-retry" data-action="retry">Try again</button>
</div>
</div>`,
}
