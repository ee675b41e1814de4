package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
	dogworkflows "github.com/pawhaven/pawhaven/internal/platform/temporal/workflows/dogs"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalDogWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineDogWorkflows)(nil)
)

// TemporalDogWorkflows starts intake workflows on a Temporal cluster.
type TemporalDogWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalDogWorkflows wires a Temporal client into the orchestrator.
func NewTemporalDogWorkflows(c client.Client) *TemporalDogWorkflows {
	return &TemporalDogWorkflows{client: c, taskQueue: dogworkflows.DogIntakeTaskQueue}
}

// IntakeDog starts the Temporal workflow that persists and enriches a dog.
func (o *TemporalDogWorkflows) IntakeDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal dog workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("dog-intake-%s", traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		dogworkflows.DogIntakeWorkflow,
		dogworkflows.DogIntakeWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
			var projection invtypes.DogProjection
			if err := existingRun.Get(ctx, &projection); err != nil {
				return nil, err
			}
			return &projection, nil
		}
		return nil, err
	}
	var projection invtypes.DogProjection
	if err := run.Get(ctx, &projection); err != nil {
		return nil, err
	}
	return &projection, nil
}

// InlineDogWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineDogWorkflows struct {
	service ports.Service
}

// NewInlineDogWorkflows wraps the inventory service for synchronous execution.
func NewInlineDogWorkflows(service ports.Service) *InlineDogWorkflows {
	return &InlineDogWorkflows{service: service}
}

// IntakeDog delegates to the application service without durable orchestration.
func (o *InlineDogWorkflows) IntakeDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline dog workflows not configured")
	}
	return o.service.AddDog(ctx, input)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
