package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Respond sends a ProblemDetail response with proper content type.
func Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError converts an error to a ProblemDetail and responds. Errors
// that are not already ProblemDetails become upstream failures, matching
// the gateway's role as a pure aggregator.
func RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		Respond(c, problem)
		return
	}
	Respond(c, ErrUpstream.WithDetail(err.Error()))
}

// BadRequest sends a 400 problem response.
func BadRequest(c *gin.Context, detail string) {
	Respond(c, ErrBadRequest.WithDetail(detail))
}

// NotFound sends a 404 problem response.
func NotFound(c *gin.Context, detail string) {
	Respond(c, ErrNotFound.WithDetail(detail))
}
