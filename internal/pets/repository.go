package pets

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Repository defines the interface for per-session pet storage.
type Repository interface {
	Add(ctx context.Context, req *AddPetRequest) (*Pet, error)
	GetByID(ctx context.Context, id string) (*Pet, error)
	List(ctx context.Context) ([]*Pet, error)
}

// InMemoryRepository keeps pets in memory for the lifetime of a session.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Pet
}

// NewInMemoryRepository creates a repository pre-populated with seed pets.
// Passing nil seeds the demo list.
func NewInMemoryRepository(seed []Pet) *InMemoryRepository {
	if seed == nil {
		seed = DemoPets()
	}
	r := &InMemoryRepository{byID: make(map[string]*Pet)}
	for i := range seed {
		pet := seed[i]
		r.order = append(r.order, pet.ID)
		r.byID[pet.ID] = &pet
	}
	return r
}

// Add validates and appends a new pet.
func (r *InMemoryRepository) Add(ctx context.Context, req *AddPetRequest) (*Pet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pet := &Pet{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Breed:       req.Breed,
		AgeYears:    req.AgeYears,
		WeightLbs:   req.WeightLbs,
		Notes:       req.Notes,
		DisplayIcon: defaultIcon,
	}

	r.mu.Lock()
	r.order = append(r.order, pet.ID)
	r.byID[pet.ID] = pet
	r.mu.Unlock()

	return pet, nil
}

// GetByID retrieves a pet by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.byID[id]
	if !ok {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

// List returns all pets in insertion order.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

const defaultIcon = "🐶"

// DemoPets returns the stock pet list shown to demo visitors.
func DemoPets() []Pet {
	return []Pet{
		{ID: "pet-demo-buddy", Name: "Buddy", Breed: "Golden Retriever", AgeYears: 3, WeightLbs: 68, DisplayIcon: "🦮"},
		{ID: "pet-demo-luna", Name: "Luna", Breed: "French Bulldog", AgeYears: 2, WeightLbs: 24, Notes: "Nervous around clippers", DisplayIcon: "🐕"},
		{ID: "pet-demo-max", Name: "Max", Breed: "Border Collie", AgeYears: 5, WeightLbs: 42, DisplayIcon: "🐶"},
	}
}
