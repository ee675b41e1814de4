package application

import (
	"context"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

// Service orchestrates the inventory bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the inventory service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// AddDog persists a new dog aggregate. The repository assigns the id.
func (s *Service) AddDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	dog, err := buildDogFromMutation(input.DogMutationInput)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.checkBreedLink(ctx, dog.BreedID); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.SaveDog(ctx, dog)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateDog applies a partial mutation to an existing dog.
func (s *Service) UpdateDog(ctx context.Context, input invtypes.UpdateDogInput) (*invtypes.DogProjection, error) {
	projection, err := s.repo.GetDogByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := applyPartialMutation(projection.Dog, input.DogMutationInput); err != nil {
		return nil, mapError(err)
	}
	if err := s.checkBreedLink(ctx, projection.Dog.BreedID); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.SaveDog(ctx, projection.Dog)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetDogByID loads a single dog aggregate.
func (s *Service) GetDogByID(ctx context.Context, input invtypes.DogIdentifier) (*invtypes.DogProjection, error) {
	projection, err := s.repo.GetDogByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return projection, nil
}

// DeleteDog removes a dog.
func (s *Service) DeleteDog(ctx context.Context, input invtypes.DogIdentifier) error {
	if err := s.repo.DeleteDog(ctx, input.ID); err != nil {
		return mapError(err)
	}
	return nil
}

// ListDogs exposes the full adoptable inventory.
func (s *Service) ListDogs(ctx context.Context) ([]*invtypes.DogProjection, error) {
	result, err := s.repo.ListDogs(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// ListDogsByBreedAPIID returns the dogs linked to a remote breed id.
func (s *Service) ListDogsByBreedAPIID(ctx context.Context, input invtypes.BreedAPIIdentifier) ([]*invtypes.DogProjection, error) {
	result, err := s.repo.ListDogsByBreedAPIID(ctx, input.APIID)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// ListBreeds returns the local breed records.
func (s *Service) ListBreeds(ctx context.Context) ([]*domain.Breed, error) {
	result, err := s.repo.ListBreeds(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// TagDog attaches temperament enrichment to an existing dog.
func (s *Service) TagDog(ctx context.Context, input invtypes.TagDogInput) (*invtypes.DogProjection, error) {
	projection, err := s.repo.GetDogByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	projection.Dog.ReplaceTemperamentTags(input.Tags)
	saved, err := s.repo.SaveDog(ctx, projection.Dog)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) checkBreedLink(ctx context.Context, breedID *int64) error {
	if breedID == nil {
		return nil
	}
	_, err := s.repo.GetBreedByID(ctx, *breedID)
	return err
}

func buildDogFromMutation(input invtypes.DogMutationInput) (*domain.Dog, error) {
	if input.Name == nil {
		return nil, domain.ErrEmptyName
	}
	dog, err := domain.NewDog(input.ID, *input.Name)
	if err != nil {
		return nil, err
	}
	partial := input
	partial.Name = nil
	if err := applyPartialMutation(dog, partial); err != nil {
		return nil, err
	}
	return dog, nil
}

func applyPartialMutation(target *domain.Dog, input invtypes.DogMutationInput) error {
	if input.Name != nil {
		if err := target.Rename(*input.Name); err != nil {
			return err
		}
	}
	if input.Age != nil {
		if err := target.SetAge(input.Age); err != nil {
			return err
		}
	}
	if input.Status != nil {
		target.UpdateStatus(*input.Status)
	}
	if input.ImageURL != nil {
		target.UpdateImageURL(*input.ImageURL)
	}
	if input.BreedID != nil {
		if *input.BreedID == 0 {
			target.AssignBreed(nil)
		} else {
			target.AssignBreed(input.BreedID)
		}
	}
	if input.TemperamentTags != nil {
		target.ReplaceTemperamentTags(*input.TemperamentTags)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
