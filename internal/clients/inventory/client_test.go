package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/pawhaven/internal/catalog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestLoginRetainsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds["username"])
		http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "tok-1", Path: "/"})
		_ = json.NewEncoder(w).Encode(User{ID: 1, Username: "admin"})
	})
	mux.HandleFunc("GET /check_session", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_token")
		if err != nil || cookie.Value != "tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(User{ID: 1, Username: "admin"})
	})
	c := newTestClient(t, mux)

	user, err := c.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	user, err = c.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestErrorBodyIsSurfacedVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /dogs/42", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})
	c := newTestClient(t, mux)

	err := c.DeleteDog(context.Background(), 42)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Error())
}

func TestErrorWithoutBodyFallsBackToStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /dogs", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := newTestClient(t, mux)

	_, err := c.ListDogs(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "inventory API status 502", apiErr.Error())
}

func TestCreateDogSendsOnlySetFields(t *testing.T) {
	name := "Rex"
	mux := http.NewServeMux()
	mux.HandleFunc("POST /dogs", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"name": "Rex"}, raw)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Dog{ID: 10, Name: "Rex", Status: "Available"})
	})
	c := newTestClient(t, mux)

	dog, err := c.CreateDog(context.Background(), DogInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, int64(10), dog.ID)
	assert.Equal(t, "Available", dog.Status)
}

func TestDogsByBreedAPIIDPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /breeds/api/161/dogs", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]Dog{{ID: 1, Name: "Daisy"}})
	})
	c := newTestClient(t, mux)

	dogs, err := c.DogsByBreedAPIID(context.Background(), 161)
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Daisy", dogs[0].Name)
}

func TestCatalogDogsCarriesBreedLink(t *testing.T) {
	age := 3
	dogs := []Dog{
		{ID: 1, Name: "Daisy", Age: &age, Status: "Available", Breed: &Breed{ID: 2, Name: "Beagle", APIID: 161}},
		{ID: 2, Name: "Stray", Status: "Pending"},
	}
	out := CatalogDogs(dogs)
	require.Len(t, out, 2)
	assert.Equal(t, 161, out[0].BreedAPIID)
	assert.Equal(t, "Beagle", out[0].BreedName)
	assert.Equal(t, catalog.Dog{ID: 2, Name: "Stray", Status: "Pending"}, out[1])
}
