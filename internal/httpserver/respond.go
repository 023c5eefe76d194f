package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
	usersvc "storefront/internal/service/user"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and service errors to status codes. Not
// found carries an empty body; validation failures return the message
// so clients can surface it.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, usersvc.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
