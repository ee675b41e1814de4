// Package httpapi exposes the adoption inventory over REST.
//
// Error bodies are always `{"error": "<message>"}`; successful responses
// carry the affected record. Admin mutations require a valid session cookie.
package httpapi

import (
	"github.com/gin-gonic/gin"

	accports "github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
	invports "github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "session_token"

// Handlers bundles the services behind the inventory routes.
type Handlers struct {
	dogs     invports.Service
	intake   invports.WorkflowOrchestrator
	accounts accports.Service
}

// NewHandlers wires the inventory transport.
func NewHandlers(dogs invports.Service, intake invports.WorkflowOrchestrator, accounts accports.Service) *Handlers {
	return &Handlers{dogs: dogs, intake: intake, accounts: accounts}
}

// NewRouter builds the gin engine with all inventory routes registered.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/breeds", h.ListBreeds)
	router.GET("/breeds/api/:api_id/dogs", h.ListDogsByBreedAPIID)

	router.GET("/dogs", h.ListDogs)
	router.GET("/dogs/:id", h.GetDog)

	router.POST("/login", h.Login)
	router.DELETE("/logout", h.Logout)
	router.GET("/check_session", h.CheckSession)

	admin := router.Group("/", h.RequireSession)
	admin.POST("/dogs", h.CreateDog)
	admin.PATCH("/dogs/:id", h.UpdateDog)
	admin.DELETE("/dogs/:id", h.DeleteDog)

	return router
}
