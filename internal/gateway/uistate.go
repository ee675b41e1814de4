package gateway

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pawhaven/pawhaven/internal/appearance"
	"github.com/pawhaven/pawhaven/internal/selection"
	"github.com/pawhaven/pawhaven/internal/shared/httperr"
)

// SelectionResponse reports the visitor's compare selection.
type SelectionResponse struct {
	IDs      []int `json:"ids"`
	Count    int   `json:"count"`
	Capacity int   `json:"capacity"`
	Added    *bool `json:"added,omitempty"`
}

// Selection returns the visitor's current compare selection.
func (h *Handlers) Selection(c *gin.Context) {
	store := h.visitor(c).selection
	c.JSON(http.StatusOK, SelectionResponse{
		IDs:      store.IDs(),
		Count:    store.Count(),
		Capacity: selection.Capacity,
	})
}

// AddToSelection adds a breed id; full or duplicate selections are a no-op
// reported through the added flag.
func (h *Handlers) AddToSelection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid breed id")
		return
	}
	store := h.visitor(c).selection
	added := store.Add(id)
	c.JSON(http.StatusOK, SelectionResponse{
		IDs:      store.IDs(),
		Count:    store.Count(),
		Capacity: selection.Capacity,
		Added:    &added,
	})
}

// RemoveFromSelection removes a breed id; absent ids are a no-op.
func (h *Handlers) RemoveFromSelection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid breed id")
		return
	}
	store := h.visitor(c).selection
	store.Remove(id)
	c.JSON(http.StatusOK, SelectionResponse{
		IDs:      store.IDs(),
		Count:    store.Count(),
		Capacity: selection.Capacity,
	})
}

// ClearSelection empties the visitor's selection.
func (h *Handlers) ClearSelection(c *gin.Context) {
	store := h.visitor(c).selection
	store.Clear()
	c.JSON(http.StatusOK, SelectionResponse{
		IDs:      store.IDs(),
		Count:    0,
		Capacity: selection.Capacity,
	})
}

// ThemeResponse reports the visitor's display mode.
type ThemeResponse struct {
	Mode appearance.Mode `json:"mode"`
}

// Theme returns the visitor's current display mode.
func (h *Handlers) Theme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Mode: h.visitor(c).appearance.Current()})
}

// SetTheme forces a display mode.
func (h *Handlers) SetTheme(c *gin.Context) {
	var payload ThemeResponse
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}
	store := h.visitor(c).appearance
	store.Set(payload.Mode)
	c.JSON(http.StatusOK, ThemeResponse{Mode: store.Current()})
}

// ToggleTheme flips between light and dark.
func (h *Handlers) ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Mode: h.visitor(c).appearance.Toggle()})
}
