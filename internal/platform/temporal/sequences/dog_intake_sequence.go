package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	dogactivities "github.com/pawhaven/pawhaven/internal/platform/temporal/activities/dogs"
)

// RunDogIntakeSequence executes the ordered set of activities needed to
// persist a dog and enrich it with breed directory temperament tags.
func RunDogIntakeSequence(ctx workflow.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("dog intake sequence started")
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	enrichOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var projection invtypes.DogProjection
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), dogactivities.PersistDogActivityName, input).Get(ctx, &projection)
	if err != nil {
		logger.Error("dog intake sequence failed", "error", err)
		return nil, err
	}
	if projection.Dog != nil {
		logger.Info("dog intake sequence persisted", "dogId", projection.Dog.ID)
	} else {
		logger.Info("dog intake sequence persisted")
	}

	// Enrichment is best effort; a dead breed directory never loses the dog.
	if projection.Dog != nil && projection.Breed != nil {
		enrichInput := invtypes.DogIdentifier{ID: projection.Dog.ID}
		var enriched invtypes.DogProjection
		if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, enrichOptions), dogactivities.EnrichDogActivityName, enrichInput).Get(ctx, &enriched); err != nil {
			logger.Error("dog intake sequence enrichment failed", "dogId", projection.Dog.ID, "error", err)
			return &projection, nil
		}
		logger.Info("dog intake sequence enriched", "dogId", projection.Dog.ID)
		return &enriched, nil
	}
	return &projection, nil
}
