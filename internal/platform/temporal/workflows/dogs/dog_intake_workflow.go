package dogs

import (
	"go.temporal.io/sdk/workflow"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/platform/temporal/sequences"
)

const (
	// DogIntakeWorkflowName is the public identifier for registering the workflow.
	DogIntakeWorkflowName = "dogs.workflows.Intake"
	// DogIntakeTaskQueue is the queue consumed by the worker processing intake workflows.
	DogIntakeTaskQueue = "DOG_INTAKE"
)

// DogIntakeWorkflowInput captures the payload required to register a new dog.
type DogIntakeWorkflowInput struct {
	Command invtypes.AddDogInput
	TraceID string
}

// DogIntakeWorkflow orchestrates the activities needed to persist and enrich a dog.
func DogIntakeWorkflow(ctx workflow.Context, input DogIntakeWorkflowInput) (*invtypes.DogProjection, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("DogIntakeWorkflow started", withTraceID(input.TraceID)...)
	projection, err := sequences.RunDogIntakeSequence(ctx, input.Command)
	if err != nil {
		logger.Error("DogIntakeWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	if projection != nil && projection.Dog != nil {
		logger.Info("DogIntakeWorkflow completed", withTraceID(input.TraceID, "dogId", projection.Dog.ID)...)
	} else {
		logger.Info("DogIntakeWorkflow completed", withTraceID(input.TraceID)...)
	}
	return projection, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
