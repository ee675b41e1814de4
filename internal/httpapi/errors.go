package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	accports "github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
	invapp "github.com/pawhaven/pawhaven/internal/domains/inventory/application"
	invports "github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

// errorBody is the fixed error contract of the inventory API.
type errorBody struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, invports.ErrDogNotFound):
		c.JSON(http.StatusNotFound, errorBody{Error: invports.ErrDogNotFound.Error()})
	case errors.Is(err, invapp.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, accports.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorBody{Error: accports.ErrInvalidCredentials.Error()})
	case errors.Is(err, accports.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: msg})
}
