// Package gateway serves the catalog views the adoption SPA renders:
// joined breed/dog listings, comparison tables, and per-visitor UI state.
package gateway

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/pawhaven/pawhaven/internal/catalog"
	"github.com/pawhaven/pawhaven/internal/clients/inventory"
	"github.com/pawhaven/pawhaven/internal/details"
)

// VisitorCookieName identifies a browser across requests so selection and
// display mode stick without accounts.
const VisitorCookieName = "pawhaven_visitor"

// BreedDirectory is the remote breed API surface the gateway consumes.
type BreedDirectory interface {
	ListBreeds(ctx context.Context) ([]catalog.Breed, error)
	GetBreed(ctx context.Context, id int) (*catalog.BreedDetail, error)
}

// InventoryAPI is the local backend surface the gateway consumes.
type InventoryAPI interface {
	ListDogs(ctx context.Context) ([]inventory.Dog, error)
	DogsByBreedAPIID(ctx context.Context, apiID int) ([]inventory.Dog, error)
}

// Handlers bundles the gateway's collaborators.
type Handlers struct {
	breeds    BreedDirectory
	inventory InventoryAPI
	details   *details.Cache
	visitors  *visitorRegistry
}

// NewHandlers wires the gateway transport. The detail cache is shared by
// all visitors for the process lifetime.
func NewHandlers(breeds BreedDirectory, inv InventoryAPI) *Handlers {
	return &Handlers{
		breeds:    breeds,
		inventory: inv,
		details:   details.NewCache(breeds.GetBreed),
		visitors:  newVisitorRegistry(),
	}
}

// NewRouter builds the gin engine with all gateway routes registered.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.ensureVisitor)

	router.GET("/catalog", h.Catalog)
	router.GET("/catalog/temperaments", h.Temperaments)
	router.GET("/breeds/:id/details", h.BreedDetails)
	router.GET("/compare", h.Compare)
	router.GET("/available/:api_id", h.AvailableDogs)

	router.GET("/selection", h.Selection)
	router.POST("/selection/:id", h.AddToSelection)
	router.DELETE("/selection/:id", h.RemoveFromSelection)
	router.DELETE("/selection", h.ClearSelection)

	router.GET("/theme", h.Theme)
	router.PUT("/theme", h.SetTheme)
	router.POST("/theme/toggle", h.ToggleTheme)

	return router
}

const visitorStateKey = "visitorState"

// ensureVisitor issues the visitor cookie on first contact and stashes
// the visitor's state on the request context.
func (h *Handlers) ensureVisitor(c *gin.Context) {
	id, err := c.Cookie(VisitorCookieName)
	if err != nil || id == "" {
		id = newVisitorID()
		c.SetCookie(VisitorCookieName, id, 0, "/", "", false, true)
	}
	c.Set(visitorStateKey, h.visitors.get(id))
	c.Next()
}

func (h *Handlers) visitor(c *gin.Context) *visitorState {
	if v, ok := c.Get(visitorStateKey); ok {
		if state, ok := v.(*visitorState); ok {
			return state
		}
	}
	// ensureVisitor always runs first; this is a safety net for tests
	// hitting handlers directly.
	return h.visitors.get("anonymous")
}
