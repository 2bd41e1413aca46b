package catalog

import (
	"context"
	"errors"
	"sync"
)

// ErrServiceNotFound is returned when an offering id is unknown.
var ErrServiceNotFound = errors.New("catalog: service not found")

// Repository defines the read interface over the service catalog.
type Repository interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
}

// InMemoryRepository serves a fixed offering list from memory.
type InMemoryRepository struct {
	mu       sync.RWMutex
	services []Service
}

// NewInMemoryRepository creates a repository over the given offerings.
// Passing nil seeds the demo dog-service catalog.
func NewInMemoryRepository(services []Service) *InMemoryRepository {
	if services == nil {
		services = DemoServices()
	}
	return &InMemoryRepository{services: services}
}

// List returns a copy of the offering list.
func (r *InMemoryRepository) List(ctx context.Context) ([]Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

// GetByID returns a single offering.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.services {
		if r.services[i].ID == id {
			svc := r.services[i]
			return &svc, nil
		}
	}
	return nil, ErrServiceNotFound
}

// DemoServices returns the stock dog-service catalog used by demo deployments.
func DemoServices() []Service {
	return []Service{
		{ID: "svc-grooming-full", Title: "Full Grooming", Category: "grooming", Price: Money{AmountCents: 7500, Currency: "USD"}, DurationMin: 90},
		{ID: "svc-grooming-bath", Title: "Bath & Brush", Category: "grooming", Price: Money{AmountCents: 4000, Currency: "USD"}, DurationMin: 45},
		{ID: "svc-walk-30", Title: "Neighborhood Walk", Category: "walking", Price: Money{AmountCents: 2500, Currency: "USD"}, DurationMin: 30},
		{ID: "svc-walk-60", Title: "Adventure Walk", Category: "walking", Price: Money{AmountCents: 4500, Currency: "USD"}, DurationMin: 60},
		{ID: "svc-boarding-night", Title: "Overnight Boarding", Category: "boarding", Price: Money{AmountCents: 6500, Currency: "USD"}, DurationMin: 720},
		{ID: "svc-daycare-day", Title: "Doggy Daycare", Category: "daycare", Price: Money{AmountCents: 3800, Currency: "USD"}, DurationMin: 480},
		{ID: "svc-training-basic", Title: "Basic Obedience Session", Category: "training", Price: Money{AmountCents: 5500, Currency: "USD"}, DurationMin: 60},
	}
}
