package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
	"github.com/pawhaven/pawhaven/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu         sync.RWMutex
	dogs       map[int64]*storedDog
	breeds     map[int64]*domain.Breed
	nextDogID  int64
	nextBreeds int64
	now        func() time.Time
}

type storedDog struct {
	dog      *domain.Dog
	metadata projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		dogs:   map[int64]*storedDog{},
		breeds: map[int64]*domain.Breed{},
		now:    time.Now,
	}
}

// WithClock overrides the timestamp source, mainly for tests.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// SaveDog inserts or replaces a dog, assigning an id on first insert.
func (r *Repository) SaveDog(_ context.Context, dog *domain.Dog) (*invtypes.DogProjection, error) {
	if dog == nil {
		return nil, errors.New("cannot save nil dog")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if dog.ID == 0 {
		r.nextDogID++
		dog.ID = r.nextDogID
	} else if dog.ID > r.nextDogID {
		r.nextDogID = dog.ID
	}

	entry, ok := r.dogs[dog.ID]
	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}

	stored := &storedDog{dog: cloneDog(dog), metadata: metadata}
	r.dogs[dog.ID] = stored
	return r.projectionLocked(stored), nil
}

// GetDogByID fetches a dog if present.
func (r *Repository) GetDogByID(_ context.Context, id int64) (*invtypes.DogProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.dogs[id]
	if !ok {
		return nil, ports.ErrDogNotFound
	}
	return r.projectionLocked(entry), nil
}

// DeleteDog removes a dog.
func (r *Repository) DeleteDog(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[id]; !ok {
		return ports.ErrDogNotFound
	}
	delete(r.dogs, id)
	return nil
}

// ListDogs returns every dog.
func (r *Repository) ListDogs(_ context.Context) ([]*invtypes.DogProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*invtypes.DogProjection, 0, len(r.dogs))
	for _, entry := range r.dogs {
		list = append(list, r.projectionLocked(entry))
	}
	return list, nil
}

// ListDogsByBreedAPIID returns dogs whose breed links to the remote id.
func (r *Repository) ListDogsByBreedAPIID(_ context.Context, apiID int) ([]*invtypes.DogProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*invtypes.DogProjection
	for _, entry := range r.dogs {
		if entry.dog.BreedID == nil {
			continue
		}
		breed, ok := r.breeds[*entry.dog.BreedID]
		if !ok || breed.APIID != apiID {
			continue
		}
		list = append(list, r.projectionLocked(entry))
	}
	return list, nil
}

// SaveBreed inserts or replaces a breed record, assigning an id on first insert.
func (r *Repository) SaveBreed(_ context.Context, breed *domain.Breed) (*domain.Breed, error) {
	if breed == nil {
		return nil, errors.New("cannot save nil breed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if breed.ID == 0 {
		r.nextBreeds++
		breed.ID = r.nextBreeds
	} else if breed.ID > r.nextBreeds {
		r.nextBreeds = breed.ID
	}
	stored := *breed
	r.breeds[breed.ID] = &stored
	copy := stored
	return &copy, nil
}

// GetBreedByID fetches a breed if present.
func (r *Repository) GetBreedByID(_ context.Context, id int64) (*domain.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	breed, ok := r.breeds[id]
	if !ok {
		return nil, ports.ErrBreedNotFound
	}
	copy := *breed
	return &copy, nil
}

// ListBreeds returns all local breed records.
func (r *Repository) ListBreeds(_ context.Context) ([]*domain.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Breed, 0, len(r.breeds))
	for _, breed := range r.breeds {
		copy := *breed
		list = append(list, &copy)
	}
	return list, nil
}

func (r *Repository) projectionLocked(entry *storedDog) *invtypes.DogProjection {
	proj := &invtypes.DogProjection{
		Dog:      cloneDog(entry.dog),
		Metadata: entry.metadata,
	}
	if entry.dog.BreedID != nil {
		if breed, ok := r.breeds[*entry.dog.BreedID]; ok {
			copy := *breed
			proj.Breed = &copy
		}
	}
	return proj
}

func cloneDog(d *domain.Dog) *domain.Dog {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Age != nil {
		age := *d.Age
		clone.Age = &age
	}
	if d.BreedID != nil {
		id := *d.BreedID
		clone.BreedID = &id
	}
	if len(d.TemperamentTags) > 0 {
		clone.TemperamentTags = append([]string{}, d.TemperamentTags...)
	}
	return &clone
}
