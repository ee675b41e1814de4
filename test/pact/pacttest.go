//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "pawhaven-inventory-api"
	ConsumerName = "pawhaven-catalog-gateway"

	StateDogsBaseline = "dogs baseline"
	StateDogExists    = "dog with id 101 exists"
	StateBreedsSeeded = "breed directory links seeded"
	StateAdminExists  = "admin account exists"
)

const (
	ExistingDogID   int64 = 101
	ExistingBreedID int64 = 7
	BreedAPIID            = 42

	AdminUsername = "pact-admin"
	AdminPassword = "pact-pass-22"
)

const (
	exampleDogName  = "Hachi"
	exampleImageURL = "https://example.pact/dogs/hachi.png"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the catalog consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleDogPayload provides stable test data for dog interactions.
func ExampleDogPayload() map[string]any {
	return map[string]any{
		"id":        ExistingDogID,
		"name":      exampleDogName,
		"age":       3,
		"status":    "Available",
		"image_url": exampleImageURL,
		"breed": map[string]any{
			"id":     ExistingBreedID,
			"name":   "Akita",
			"api_id": BreedAPIID,
		},
	}
}

// ExampleBreedPayload provides stable test data for breed interactions.
func ExampleBreedPayload() map[string]any {
	return map[string]any{
		"id":     ExistingBreedID,
		"name":   "Akita",
		"api_id": BreedAPIID,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
