package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/httpapi/mapper"
)

// ListDogs returns the full adoptable inventory.
func (h *Handlers) ListDogs(c *gin.Context) {
	projections, err := h.dogs.ListDogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromProjectionList(projections))
}

// GetDog returns a single dog.
func (h *Handlers) GetDog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	projection, err := h.dogs.GetDogByID(c.Request.Context(), invtypes.DogIdentifier{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromProjection(projection))
}

// CreateDog registers a new dog through the intake workflow.
func (h *Handlers) CreateDog(c *gin.Context) {
	var payload mapper.MutationDog
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	projection, err := h.intake.IntakeDog(c.Request.Context(), invtypes.AddDogInput{
		DogMutationInput: payload.ToMutationInput(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromProjection(projection))
}

// UpdateDog applies a partial mutation to an existing dog.
func (h *Handlers) UpdateDog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload mapper.MutationDog
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	projection, err := h.dogs.UpdateDog(c.Request.Context(), invtypes.UpdateDogInput{
		ID:               id,
		DogMutationInput: payload.ToMutationInput(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromProjection(projection))
}

// DeleteDog removes a dog.
func (h *Handlers) DeleteDog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.dogs.DeleteDog(c.Request.Context(), invtypes.DogIdentifier{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBreeds returns the local breed records.
func (h *Handlers) ListBreeds(c *gin.Context) {
	breeds, err := h.dogs.ListBreeds(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromBreedList(breeds))
}

// ListDogsByBreedAPIID returns the dogs linked to a remote breed id.
func (h *Handlers) ListDogsByBreedAPIID(c *gin.Context) {
	apiID, err := strconv.Atoi(c.Param("api_id"))
	if err != nil {
		respondBadRequest(c, "invalid breed api id")
		return
	}
	projections, err := h.dogs.ListDogsByBreedAPIID(c.Request.Context(), invtypes.BreedAPIIdentifier{APIID: apiID})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromProjectionList(projections))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
