package types

import (
	"time"

	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/shared/projection"
)

// DogProjection transports a dog aggregate with its linked breed record and
// persistence metadata.
type DogProjection struct {
	Dog      *domain.Dog
	Breed    *domain.Breed
	Metadata projection.Metadata
}

// NewDogProjection wraps an aggregate with its breed link and metadata.
func NewDogProjection(dog *domain.Dog, breed *domain.Breed, createdAt, updatedAt time.Time) *DogProjection {
	if dog == nil {
		return nil
	}
	return &DogProjection{
		Dog:      dog,
		Breed:    breed,
		Metadata: projection.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt},
	}
}

// DogMutationInput carries optional fields for create and partial update.
// Nil pointers mean "leave unchanged".
type DogMutationInput struct {
	ID              int64
	Name            *string
	Age             *int
	Status          *string
	ImageURL        *string
	BreedID         *int64
	TemperamentTags *[]string
}

// AddDogInput is the command to register a new dog.
type AddDogInput struct {
	DogMutationInput
}

// UpdateDogInput applies a partial mutation to an existing dog.
type UpdateDogInput struct {
	ID int64
	DogMutationInput
}

// DogIdentifier addresses a single dog.
type DogIdentifier struct {
	ID int64
}

// BreedAPIIdentifier addresses dogs through their remote breed id.
type BreedAPIIdentifier struct {
	APIID int
}

// TagDogInput attaches temperament enrichment to a persisted dog.
type TagDogInput struct {
	ID   int64
	Tags []string
}
