package gateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pawhaven/pawhaven/internal/catalog"
	"github.com/pawhaven/pawhaven/internal/clients/dogapi"
	"github.com/pawhaven/pawhaven/internal/compare"
	"github.com/pawhaven/pawhaven/internal/details"
	"github.com/pawhaven/pawhaven/internal/shared/httperr"
)

// BreedDetailResponse is the expanded card view model.
type BreedDetailResponse struct {
	catalog.BreedDetail
	ImageURL string        `json:"image_url"`
	State    details.State `json:"state"`
}

// BreedDetails serves the lazily fetched, cached breed expansion.
func (h *Handlers) BreedDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid breed id")
		return
	}
	detail, err := h.details.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dogapi.ErrBreedNotFound) {
			httperr.NotFound(c, err.Error())
			return
		}
		httperr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BreedDetailResponse{
		BreedDetail: *detail,
		ImageURL:    compare.ImageURL(detail.ReferenceImageID),
		State:       h.details.StateOf(id),
	})
}
