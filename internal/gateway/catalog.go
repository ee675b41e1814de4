package gateway

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/pawhaven/pawhaven/internal/catalog"
	"github.com/pawhaven/pawhaven/internal/clients/inventory"
	"github.com/pawhaven/pawhaven/internal/compare"
	"github.com/pawhaven/pawhaven/internal/shared/httperr"
)

// CatalogEntry is one breed card in the catalog view.
type CatalogEntry struct {
	catalog.Breed
	ImageURL string        `json:"image_url"`
	Dogs     []catalog.Dog `json:"dogs"`
	Selected bool          `json:"selected"`
}

// CatalogResponse is the full catalog view model.
type CatalogResponse struct {
	Entries []CatalogEntry `json:"entries"`
	Total   int            `json:"total"`
}

// Catalog serves the joined, filtered, sorted breed listing. Both
// upstreams are fetched concurrently; either failing fails the view.
func (h *Handlers) Catalog(c *gin.Context) {
	query, ok := parseQuery(c)
	if !ok {
		return
	}

	breeds, dogs, err := h.loadCatalog(c)
	if err != nil {
		httperr.RespondError(c, err)
		return
	}

	augmented := query.Apply(catalog.Augment(breeds, dogs))
	state := h.visitor(c)
	entries := make([]CatalogEntry, 0, len(augmented))
	for _, b := range augmented {
		entries = append(entries, CatalogEntry{
			Breed:    b.Breed,
			ImageURL: compare.ImageURL(b.ReferenceImageID),
			Dogs:     b.Dogs,
			Selected: state.selection.Contains(b.ID),
		})
	}
	c.JSON(http.StatusOK, CatalogResponse{Entries: entries, Total: len(entries)})
}

// Temperaments serves the distinct tag list used to build filter chips.
func (h *Handlers) Temperaments(c *gin.Context) {
	breeds, err := h.breeds.ListBreeds(c.Request.Context())
	if err != nil {
		httperr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"temperaments": catalog.Temperaments(breeds)})
}

// AvailableDogs proxies the breed-scoped inventory listing.
func (h *Handlers) AvailableDogs(c *gin.Context) {
	apiID, err := strconv.Atoi(c.Param("api_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid breed api id")
		return
	}
	dogs, err := h.inventory.DogsByBreedAPIID(c.Request.Context(), apiID)
	if err != nil {
		httperr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dogs": inventory.CatalogDogs(dogs)})
}

func (h *Handlers) loadCatalog(c *gin.Context) ([]catalog.Breed, []catalog.Dog, error) {
	var (
		breeds []catalog.Breed
		dogs   []inventory.Dog
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		breeds, err = h.breeds.ListBreeds(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		dogs, err = h.inventory.ListDogs(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return breeds, inventory.CatalogDogs(dogs), nil
}

func parseQuery(c *gin.Context) (catalog.Query, bool) {
	query := catalog.Query{
		Search: c.Query("search"),
		Sort:   catalog.SortOrder(c.DefaultQuery("sort", string(catalog.SortNameAsc))),
	}
	if raw := strings.TrimSpace(c.Query("temperaments")); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Temperaments = append(query.Temperaments, tag)
			}
		}
	}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.BadRequest(c, "available must be a boolean")
			return catalog.Query{}, false
		}
		query.AvailableOnly = available
	}
	return query, true
}
