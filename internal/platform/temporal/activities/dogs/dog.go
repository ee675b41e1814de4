package dogs

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	invports "github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

const (
	// PersistDogActivityName persists a dog aggregate without touching external directories.
	PersistDogActivityName = "dogs.activities.PersistDog"
	// EnrichDogActivityName fetches temperament tags for an existing dog.
	EnrichDogActivityName = "dogs.activities.EnrichDog"
)

// Activities groups activities that operate on the inventory bounded context.
type Activities struct {
	service  invports.Service
	enricher invports.BreedEnricher
}

// NewActivities wires the inventory collaborators into the Temporal activities bundle.
func NewActivities(service invports.Service, enricher invports.BreedEnricher) *Activities {
	return &Activities{service: service, enricher: enricher}
}

// PersistDog stores a new dog aggregate and returns its projection.
func (a *Activities) PersistDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("dog persist activity not initialized")
		return nil, errors.New("dog persist activity not initialized")
	}
	logger.Info("PersistDog activity started")
	projection, err := a.service.AddDog(ctx, input)
	if err != nil {
		logger.Error("PersistDog activity failed", "error", err)
		return nil, err
	}
	if projection != nil && projection.Dog != nil {
		logger.Info("PersistDog activity completed", "dogId", projection.Dog.ID)
	} else {
		logger.Info("PersistDog activity completed")
	}
	return projection, nil
}

// EnrichDog loads a dog and attaches temperament tags from the breed directory.
func (a *Activities) EnrichDog(ctx context.Context, input invtypes.DogIdentifier) (*invtypes.DogProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("dog enrich activity not initialized", "dogId", input.ID)
		return nil, errors.New("dog enrich activity not initialized")
	}
	if a.enricher == nil {
		logger.Info("breed enricher not configured; skipping", "dogId", input.ID)
		return a.service.GetDogByID(ctx, input)
	}

	logger.Info("EnrichDog activity started", "dogId", input.ID)
	projection, err := a.service.GetDogByID(ctx, input)
	if err != nil {
		logger.Error("EnrichDog failed to load dog", "dogId", input.ID, "error", err)
		return nil, err
	}
	if projection.Breed == nil {
		logger.Info("dog has no breed link; nothing to enrich", "dogId", input.ID)
		return projection, nil
	}
	tags, err := a.enricher.TemperamentTags(ctx, projection.Breed.APIID)
	if err != nil {
		logger.Error("EnrichDog failed to fetch tags", "dogId", input.ID, "error", err)
		return nil, err
	}
	tagged, err := a.service.TagDog(ctx, invtypes.TagDogInput{ID: input.ID, Tags: tags})
	if err != nil {
		logger.Error("EnrichDog failed to persist tags", "dogId", input.ID, "error", err)
		return nil, err
	}
	logger.Info("EnrichDog activity completed", "dogId", input.ID, "tags", len(tags))
	return tagged, nil
}
