// Package inventory calls the local adoption inventory API.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pawhaven/pawhaven/internal/catalog"
)

// Breed is a local breed record linking inventory dogs to the remote
// directory via APIID.
type Breed struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	APIID int    `json:"api_id"`
}

// Dog is an adoptable animal as served by the inventory API.
type Dog struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url,omitempty"`
	Breed    *Breed `json:"breed,omitempty"`
}

// DogInput is the payload for create and partial-update calls. Nil fields
// are omitted so updates only touch what the caller set.
type DogInput struct {
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Status   *string `json:"status,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	BreedID  *int64  `json:"breed_id,omitempty"`
}

// User is the authenticated admin account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// APIError is a non-success response carrying the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("inventory API status %d", e.StatusCode)
}

// Client talks to the inventory API. The session cookie issued by Login is
// retained in the client's jar for subsequent admin calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds an inventory client with its own cookie jar.
func New(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("inventory base URL is required")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("build cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Jar:       jar,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// ListBreeds returns the local breed records.
func (c *Client) ListBreeds(ctx context.Context) ([]Breed, error) {
	var breeds []Breed
	if err := c.do(ctx, http.MethodGet, "/breeds", nil, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// ListDogs returns every inventory dog.
func (c *Client) ListDogs(ctx context.Context) ([]Dog, error) {
	var dogs []Dog
	if err := c.do(ctx, http.MethodGet, "/dogs", nil, &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// DogsByBreedAPIID returns the dogs whose breed maps to the given remote
// breed id.
func (c *Client) DogsByBreedAPIID(ctx context.Context, apiID int) ([]Dog, error) {
	var dogs []Dog
	path := fmt.Sprintf("/breeds/api/%d/dogs", apiID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// CreateDog adds a dog and returns the persisted record.
func (c *Client) CreateDog(ctx context.Context, input DogInput) (*Dog, error) {
	var dog Dog
	if err := c.do(ctx, http.MethodPost, "/dogs", input, &dog); err != nil {
		return nil, err
	}
	return &dog, nil
}

// UpdateDog applies a partial update and returns the updated record.
func (c *Client) UpdateDog(ctx context.Context, id int64, input DogInput) (*Dog, error) {
	var dog Dog
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/dogs/%d", id), input, &dog); err != nil {
		return nil, err
	}
	return &dog, nil
}

// DeleteDog removes a dog.
func (c *Client) DeleteDog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/dogs/%d", id), nil, nil)
}

// Login authenticates and stores the session cookie in the client jar.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	body := map[string]string{"username": username, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/logout", nil, nil)
}

// CheckSession returns the logged-in user, or an unauthorized APIError.
func (c *Client) CheckSession(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/check_session", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode inventory request: %w", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build inventory request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call inventory API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var wire struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&wire); decodeErr == nil {
			apiErr.Message = wire.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode inventory response: %w", err)
	}
	return nil
}

// CatalogDogs converts inventory records into the catalog join shape.
// Dogs without a breed link are kept; the join drops them as orphans.
func CatalogDogs(dogs []Dog) []catalog.Dog {
	out := make([]catalog.Dog, 0, len(dogs))
	for _, d := range dogs {
		cd := catalog.Dog{
			ID:       d.ID,
			Name:     d.Name,
			Age:      d.Age,
			Status:   d.Status,
			ImageURL: d.ImageURL,
		}
		if d.Breed != nil {
			cd.BreedName = d.Breed.Name
			cd.BreedAPIID = d.Breed.APIID
		}
		out = append(out, cd)
	}
	return out
}
