//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/pawhaven/internal/clients/inventory"
	pacttest "github.com/pawhaven/pawhaven/test/pact"
)

func TestCatalogGatewayContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	breedMatcher := matchers.Map{
		"id":     matchers.Like(pacttest.ExistingBreedID),
		"name":   matchers.Like("Akita"),
		"api_id": matchers.Like(pacttest.BreedAPIID),
	}
	dogMatcher := matchers.Map{
		"id":        matchers.Like(pacttest.ExistingDogID),
		"name":      matchers.Like("Hachi"),
		"status":    matchers.Like("Available"),
		"image_url": matchers.Like("https://example.pact/dogs/hachi.png"),
		"breed":     breedMatcher,
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateDogExists).
		UponReceiving("a request to list all dogs").
		WithRequest("GET", "/dogs").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(dogMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateBreedsSeeded).
		UponReceiving("a request to list local breed links").
		WithRequest("GET", "/breeds").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(breedMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateDogExists).
		UponReceiving("a request for dogs of one remote breed").
		WithRequest("GET", fmt.Sprintf("/breeds/api/%d/dogs", pacttest.BreedAPIID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(dogMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateDogsBaseline).
		UponReceiving("an unauthenticated dog creation").
		WithRequest("POST", "/dogs", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{"name": matchers.Like("Stray")})
		}).
		WillRespondWith(http.StatusUnauthorized, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"error": matchers.S("unauthorized")})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		host := config.Host
		if host == "" {
			host = "localhost"
		}
		client, err := inventory.New(fmt.Sprintf("http://%s:%d", host, config.Port))
		if err != nil {
			return fmt.Errorf("build inventory client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dogs, err := client.ListDogs(ctx)
		if err != nil {
			return fmt.Errorf("list dogs: %w", err)
		}
		if len(dogs) == 0 || dogs[0].Breed == nil {
			return fmt.Errorf("expected at least one dog with a breed link, got %+v", dogs)
		}

		breeds, err := client.ListBreeds(ctx)
		if err != nil {
			return fmt.Errorf("list breeds: %w", err)
		}
		if len(breeds) == 0 {
			return fmt.Errorf("expected at least one breed link")
		}

		scoped, err := client.DogsByBreedAPIID(ctx, pacttest.BreedAPIID)
		if err != nil {
			return fmt.Errorf("list dogs by breed: %w", err)
		}
		if len(scoped) == 0 {
			return fmt.Errorf("expected dogs for breed api id %d", pacttest.BreedAPIID)
		}

		name := "Stray"
		_, err = client.CreateDog(ctx, inventory.DogInput{Name: &name})
		if err == nil {
			return fmt.Errorf("expected unauthenticated creation to fail")
		}
		var apiErr *inventory.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			return fmt.Errorf("expected 401, got %v", err)
		}
		return nil
	})
	require.NoError(t, err)
}
