package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawhaven/pawhaven/internal/compare"
	"github.com/pawhaven/pawhaven/internal/shared/httperr"
)

// CompareResponse carries the comparison table, or a prompt when the
// visitor has not selected anything yet.
type CompareResponse struct {
	Table  *compare.Table `json:"table,omitempty"`
	Prompt string         `json:"prompt,omitempty"`
}

// Compare renders the side-by-side table for the visitor's selection.
func (h *Handlers) Compare(c *gin.Context) {
	ids := h.visitor(c).selection.IDs()
	if len(ids) == 0 {
		c.JSON(http.StatusOK, CompareResponse{Prompt: "Select up to 3 breeds to compare"})
		return
	}
	table, err := compare.Build(c.Request.Context(), h.details.Get, ids)
	if err != nil {
		httperr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CompareResponse{Table: table})
}
