// Package catalog boots the gateway that serves the adoption SPA: it joins
// the public breed directory with the local inventory API.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/pawhaven/pawhaven/internal/clients/dogapi"
	"github.com/pawhaven/pawhaven/internal/clients/inventory"
	"github.com/pawhaven/pawhaven/internal/gateway"
	platformobservability "github.com/pawhaven/pawhaven/internal/platform/observability"
)

// Run boots the catalog gateway with observability and upstream clients wired.
func Run(ctx context.Context) error {
	const serviceName = "pawhaven-catalog-gateway"
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

	breedClient, err := dogapi.New(cfg.DogAPIBaseURL, cfg.DogAPIKey)
	if err != nil {
		return fmt.Errorf("failed to build breed API client: %w", err)
	}
	if cfg.DogAPIKey == "" {
		logger.Warn("DOG_API_KEY not set, breed directory requests are rate limited")
	}
	inventoryClient, err := inventory.New(cfg.InventoryBaseURL)
	if err != nil {
		return fmt.Errorf("failed to build inventory client: %w", err)
	}

	router := gateway.NewRouter(gateway.NewHandlers(breedClient, inventoryClient))
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("catalog gateway listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("catalog gateway exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
