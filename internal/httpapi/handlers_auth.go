package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accdomain "github.com/pawhaven/pawhaven/internal/domains/accounts/domain"
	accports "github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
	"github.com/pawhaven/pawhaven/internal/httpapi/mapper"
)

// Login authenticates and sets the session cookie.
func (h *Handlers) Login(c *gin.Context) {
	var creds mapper.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	result, err := h.accounts.Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(SessionCookieName, result.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, mapper.FromUser(result.User))
}

// Logout clears the session cookie and discards the server-side session.
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil {
		if err := h.accounts.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// CheckSession returns the logged-in user or 401.
func (h *Handlers) CheckSession(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromUser(user))
}

// RequireSession aborts the request unless a valid session cookie is present.
// Clients only hide admin controls; the server is the authority here.
func (h *Handlers) RequireSession(c *gin.Context) {
	if _, err := h.currentUser(c); err != nil {
		respondError(c, err)
		c.Abort()
		return
	}
	c.Next()
}

func (h *Handlers) currentUser(c *gin.Context) (*accdomain.User, error) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil, accports.ErrSessionNotFound
	}
	return h.accounts.Authenticate(c.Request.Context(), token)
}
