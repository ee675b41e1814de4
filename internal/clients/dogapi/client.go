// Package dogapi calls the public breed directory.
package dogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pawhaven/pawhaven/internal/catalog"
)

// ErrBreedNotFound marks lookups of ids the directory does not know.
var ErrBreedNotFound = errors.New("breed not found")

// Client fetches breed records from the breed directory API. Requests carry
// the account's API key in the x-api-key header.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New builds a breed directory client. The API key may be empty; the
// directory then serves rate-limited anonymous responses.
func New(baseURL, apiKey string, optFns ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("breed API base URL is required")
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(c)
		}
	}
	return c, nil
}

// ListBreeds returns the full breed directory.
func (c *Client) ListBreeds(ctx context.Context) ([]catalog.Breed, error) {
	var breeds []catalog.Breed
	if err := c.get(ctx, "/v1/breeds", &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// GetBreed returns the expanded record for one breed id.
func (c *Client) GetBreed(ctx context.Context, id int) (*catalog.BreedDetail, error) {
	var detail catalog.BreedDetail
	if err := c.get(ctx, fmt.Sprintf("/v1/breeds/%d", id), &detail); err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, fmt.Errorf("breed %d: %w", id, ErrBreedNotFound)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build breed API request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call breed API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("breed API %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode breed API response: %w", err)
	}
	return nil
}
