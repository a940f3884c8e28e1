package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitstudio/admin-api/internal/service"
	"fitstudio/admin-api/internal/upstream"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches a request id to every response, generating one when the
// client did not send its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrNoProfileFound,
	service.ErrTrainerNotFound,
	service.ErrClientNotFound,
	service.ErrWorkoutNotFound,
	service.ErrMealPlanNotFound,
}

// respondError maps a service/upstream error to the HTTP taxonomy:
// 400 for upstream domain failures, 404 for missing entities, 500 for a
// missing API key or anything unexpected.
func respondError(c *gin.Context, err error) {
	var transportErr *upstream.TransportError
	var mutationErr *upstream.MutationError

	switch {
	case errors.Is(err, upstream.ErrMissingAPIKey):
		abortWithError(c, http.StatusInternalServerError, "Missing API key")
	case errors.As(err, &transportErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Upstream request failed",
			"details": transportErr.Errors,
		})
	case errors.As(err, &mutationErr):
		abortWithError(c, http.StatusBadRequest, mutationErr.Message)
	case isNotFound(err):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
