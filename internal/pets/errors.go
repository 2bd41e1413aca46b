package pets

import "errors"

var (
	// ErrMissingName is returned when a new pet has no name.
	ErrMissingName = errors.New("pets: name is required")
	// ErrMissingBreed is returned when a new pet has no breed.
	ErrMissingBreed = errors.New("pets: breed is required")
	// ErrMissingAge is returned when a new pet has no age.
	ErrMissingAge = errors.New("pets: age is required")
	// ErrPetNotFound is returned when a pet id is unknown.
	ErrPetNotFound = errors.New("pets: pet not found")
)
