package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	accmemory "github.com/pawhaven/pawhaven/internal/domains/accounts/adapters/memory"
	accpostgres "github.com/pawhaven/pawhaven/internal/domains/accounts/adapters/persistence/postgres"
	accapp "github.com/pawhaven/pawhaven/internal/domains/accounts/application"
	accports "github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
	invmemory "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/memory"
	invobs "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/observability"
	invpostgres "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/persistence/postgres"
	invworkflows "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/workflows"
	invapp "github.com/pawhaven/pawhaven/internal/domains/inventory/application"
	invports "github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
	"github.com/pawhaven/pawhaven/internal/httpapi"
	"github.com/pawhaven/pawhaven/internal/platform/migrations"
	platformobservability "github.com/pawhaven/pawhaven/internal/platform/observability"
	platformpostgres "github.com/pawhaven/pawhaven/internal/platform/postgres"
)

// Run boots the inventory HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "pawhaven-inventory-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	var dogRepo invports.Repository
	var accountRepo accports.Repository
	var sessions accports.SessionStore
	if db != nil {
		dogRepo = invpostgres.NewRepository(db)
		accountRepo = accpostgres.NewRepository(db)
		sessions = accpostgres.NewSessionStore(db)
	} else {
		dogRepo = invmemory.NewRepository()
		accountRepo = accmemory.NewRepository()
		sessions = accmemory.NewSessionStore()
	}

	coreDogService := invapp.NewService(dogRepo)
	dogService := invobs.New(
		coreDogService,
		invobs.WithLogger(logger),
		invobs.WithTracer(instruments.Tracer("internal.inventory.application")),
		invobs.WithMeter(instruments.Meter("internal.inventory.application")),
	)

	var intake invports.WorkflowOrchestrator = invworkflows.NewInlineDogWorkflows(dogService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline dog intake", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		intake = invworkflows.NewTemporalDogWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	accountService := accapp.NewService(accountRepo, sessions)
	seedAdmin(ctx, logger, accountService, cfg)

	router := httpapi.NewRouter(httpapi.NewHandlers(dogService, intake, accountService))
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("inventory API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("inventory API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// seedAdmin registers the bootstrap admin account when credentials are
// configured. An already-registered username is not an error.
func seedAdmin(ctx context.Context, logger *slog.Logger, accounts accports.Service, cfg Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, no admin account seeded")
		return
	}
	if _, err := accounts.Register(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Warn("failed to seed admin account", slog.String("error", err.Error()))
		return
	}
	logger.Info("admin account ready", slog.String("username", cfg.AdminUsername))
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
