// Package pets stores the visitor's dogs for the duration of a widget
// session. The store is append-only: pets can be added mid-session and are
// immediately selectable, but never edited or removed.
package pets

import "strings"

// Pet represents one of the visitor's dogs.
type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	AgeYears    int     `json:"age_years"`
	WeightLbs   float64 `json:"weight_lbs,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	DisplayIcon string  `json:"display_icon"`
}

// AddPetRequest carries the new-pet form fields.
type AddPetRequest struct {
	Name      string  `json:"name"`
	Breed     string  `json:"breed"`
	AgeYears  int     `json:"age_years"`
	WeightLbs float64 `json:"weight_lbs,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// Validate checks the required new-pet fields.
func (r *AddPetRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Breed) == "" {
		return ErrMissingBreed
	}
	if r.AgeYears <= 0 {
		return ErrMissingAge
	}
	return nil
}
