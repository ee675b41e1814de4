package ports

import (
	"context"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
)

// Service defines the inventory use cases exposed to adapters (inbound/driving port).
type Service interface {
	AddDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error)
	UpdateDog(ctx context.Context, input invtypes.UpdateDogInput) (*invtypes.DogProjection, error)
	GetDogByID(ctx context.Context, input invtypes.DogIdentifier) (*invtypes.DogProjection, error)
	DeleteDog(ctx context.Context, input invtypes.DogIdentifier) error
	ListDogs(ctx context.Context) ([]*invtypes.DogProjection, error)
	ListDogsByBreedAPIID(ctx context.Context, input invtypes.BreedAPIIdentifier) ([]*invtypes.DogProjection, error)
	ListBreeds(ctx context.Context) ([]*domain.Breed, error)
	TagDog(ctx context.Context, input invtypes.TagDogInput) (*invtypes.DogProjection, error)
}
