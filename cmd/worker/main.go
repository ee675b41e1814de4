package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/pawhaven/pawhaven/internal/clients/dogapi"
	breedapi "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/external/breedapi"
	invmemory "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/memory"
	invobs "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/observability"
	invpostgres "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/persistence/postgres"
	invapp "github.com/pawhaven/pawhaven/internal/domains/inventory/application"
	invports "github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
	"github.com/pawhaven/pawhaven/internal/platform/migrations"
	platformobservability "github.com/pawhaven/pawhaven/internal/platform/observability"
	platformpostgres "github.com/pawhaven/pawhaven/internal/platform/postgres"
	dogactivities "github.com/pawhaven/pawhaven/internal/platform/temporal/activities/dogs"
	dogworkflows "github.com/pawhaven/pawhaven/internal/platform/temporal/workflows/dogs"
)

func main() {
	ctx := context.Background()
	const serviceName = "pawhaven-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	dogRepo, cleanupRepo := buildDogRepository(ctx, logger)
	defer cleanupRepo()
	dogService := invobs.New(
		invapp.NewService(dogRepo),
		invobs.WithLogger(logger),
		invobs.WithTracer(instruments.Tracer("internal.inventory.application")),
		invobs.WithMeter(instruments.Meter("internal.inventory.application")),
	)
	enricher, err := buildEnricher()
	if err != nil {
		logger.Error("failed to build breed enricher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	activities := dogactivities.NewActivities(dogService, enricher)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, dogworkflows.DogIntakeTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(dogworkflows.DogIntakeWorkflow, workflow.RegisterOptions{Name: dogworkflows.DogIntakeWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistDog, activity.RegisterOptions{Name: dogactivities.PersistDogActivityName})
	w.RegisterActivityWithOptions(activities.EnrichDog, activity.RegisterOptions{Name: dogactivities.EnrichDogActivityName})

	logger.Info("worker listening", slog.String("taskQueue", dogworkflows.DogIntakeTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildDogRepository(ctx context.Context, logger *slog.Logger) (invports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return invmemory.NewRepository(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return invmemory.NewRepository(), func() {}
	}
	logger.Info("worker dog repository configured with postgres")
	return invpostgres.NewRepository(db), cleanup
}

func buildEnricher() (invports.BreedEnricher, error) {
	client, err := dogapi.New(envOrDefault("DOG_API_BASE_URL", "https://api.thedogapi.com"), os.Getenv("DOG_API_KEY"))
	if err != nil {
		return nil, err
	}
	return breedapi.NewEnricher(client), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
