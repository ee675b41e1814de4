package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accmemory "github.com/pawhaven/pawhaven/internal/domains/accounts/adapters/memory"
	accapp "github.com/pawhaven/pawhaven/internal/domains/accounts/application"
	invmemory "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/memory"
	invworkflows "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/workflows"
	invapp "github.com/pawhaven/pawhaven/internal/domains/inventory/application"
	invdomain "github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/httpapi/mapper"
)

type testEnv struct {
	router *gin.Engine
	repo   *invmemory.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := invmemory.NewRepository()
	dogs := invapp.NewService(repo)
	accounts := accapp.NewService(accmemory.NewRepository(), accmemory.NewSessionStore())
	_, err := accounts.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	handlers := NewHandlers(dogs, invworkflows.NewInlineDogWorkflows(dogs), accounts)
	return &testEnv{router: NewRouter(handlers), repo: repo}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()
	body := bytes.NewBufferString(`{"username":"admin","password":"hunter22"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := e.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func jsonReq(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateDogRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonReq(t, http.MethodPost, "/dogs", `{"name":"Daisy"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestCreateDogAssignsServerID(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginCookie(t)

	req := jsonReq(t, http.MethodPost, "/dogs", `{"name":"Daisy","age":2}`)
	req.AddCookie(cookie)
	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var dog mapper.Dog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dog))
	assert.NotZero(t, dog.ID)
	assert.Equal(t, "Daisy", dog.Name)
	assert.Equal(t, invdomain.DefaultStatus, dog.Status)
	assert.Equal(t, 2, *dog.Age)
}

func TestCreateDogValidationErrorBody(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginCookie(t)

	req := jsonReq(t, http.MethodPost, "/dogs", `{"age":3}`)
	req.AddCookie(cookie)
	rec := env.do(req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "name is required")
}

func TestDeleteMissingDogReturnsNotFoundBody(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginCookie(t)

	req := httptest.NewRequest(http.MethodDelete, "/dogs/42", nil)
	req.AddCookie(cookie)
	rec := env.do(req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestUpdateDogPartialMutation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginCookie(t)

	req := jsonReq(t, http.MethodPost, "/dogs", `{"name":"Daisy"}`)
	req.AddCookie(cookie)
	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created mapper.Dog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = jsonReq(t, http.MethodPatch, "/dogs/1", `{"status":"Pending"}`)
	req.AddCookie(cookie)
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated mapper.Dog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Pending", updated.Status)
	assert.Equal(t, "Daisy", updated.Name)
}

func TestBreedScopedDogListing(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginCookie(t)

	breed, err := invdomain.NewBreed(0, "Beagle", 161)
	require.NoError(t, err)
	breed, err = env.repo.SaveBreed(context.Background(), breed)
	require.NoError(t, err)

	req := jsonReq(t, http.MethodPost, "/dogs", `{"name":"Daisy","breed_id":1}`)
	req.AddCookie(cookie)
	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/breeds/api/161/dogs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var dogs []mapper.Dog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dogs))
	require.Len(t, dogs, 1)
	assert.Equal(t, "Daisy", dogs[0].Name)
	require.NotNil(t, dogs[0].Breed)
	assert.Equal(t, breed.APIID, dogs[0].Breed.APIID)
}

func TestCheckSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/check_session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := env.loginCookie(t)
	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	req.AddCookie(cookie)
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	var user mapper.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "admin", user.Username)

	req = httptest.NewRequest(http.MethodDelete, "/logout", nil)
	req.AddCookie(cookie)
	rec = env.do(req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/check_session", nil)
	req.AddCookie(cookie)
	rec = env.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonReq(t, http.MethodPost, "/login", `{"username":"admin","password":"nope"}`))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid username or password", body["error"])
}
