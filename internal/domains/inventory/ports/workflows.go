package ports

import (
	"context"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations required by the inventory context.
type WorkflowOrchestrator interface {
	IntakeDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error)
}
