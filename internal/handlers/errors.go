package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"qa-service/internal/service"
)

// respondError translates service errors into HTTP responses. Bad requests
// carry their message; anything else gets the generic internal error body.
func respondError(c *gin.Context, err error) {
	var badRequest *service.BadRequestError
	if errors.As(err, &badRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequest.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrInternal.Error()})
}
