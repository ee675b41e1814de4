package ports

import (
	"context"
	"errors"

	"github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
)

// ErrDogNotFound keeps the inventory API's public "not found" wording.
var ErrDogNotFound = errors.New("not found")

// ErrBreedNotFound signals an unknown local breed reference.
var ErrBreedNotFound = errors.New("breed not found")

// Repository is the outbound persistence port for the inventory context.
// SaveDog assigns the id on first insert.
type Repository interface {
	SaveDog(ctx context.Context, dog *domain.Dog) (*types.DogProjection, error)
	GetDogByID(ctx context.Context, id int64) (*types.DogProjection, error)
	DeleteDog(ctx context.Context, id int64) error
	ListDogs(ctx context.Context) ([]*types.DogProjection, error)
	ListDogsByBreedAPIID(ctx context.Context, apiID int) ([]*types.DogProjection, error)

	SaveBreed(ctx context.Context, breed *domain.Breed) (*domain.Breed, error)
	GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error)
	ListBreeds(ctx context.Context) ([]*domain.Breed, error)
}
