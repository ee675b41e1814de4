package catalog

import (
	"fmt"
	"os"
	"strings"
)

// Config carries environment-driven settings for the catalog gateway process.
type Config struct {
	Port             string
	DogAPIBaseURL    string
	DogAPIKey        string
	InventoryBaseURL string
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:             envDefault("PORT", "8081"),
		DogAPIBaseURL:    envDefault("DOG_API_BASE_URL", "https://api.thedogapi.com"),
		DogAPIKey:        strings.TrimSpace(os.Getenv("DOG_API_KEY")),
		InventoryBaseURL: envDefault("INVENTORY_BASE_URL", "http://localhost:8080"),
	}
	if cfg.InventoryBaseURL == "" {
		return Config{}, fmt.Errorf("INVENTORY_BASE_URL must not be empty")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
