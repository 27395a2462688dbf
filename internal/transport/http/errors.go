package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blaizn/internal/coach"
	"blaizn/internal/domain"
)

// writeError maps domain errors onto HTTP statuses. Auth failures stay
// distinguishable in the payload; the UI may still choose generic copy.
func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": vErr.Fields})
	case errors.Is(err, domain.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, coach.ErrNoTracks), errors.Is(err, coach.ErrUnknownTrack):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStorageFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
