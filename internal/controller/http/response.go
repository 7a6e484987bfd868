package http

import (
	"errors"
	"net/http"
	"strconv"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// respondError translates domain errors into HTTP status codes. Anything
// outside the known set is a 500 and gets logged; the known ones are the
// caller's fault and are not.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identifier"})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not permitted"})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting concurrent update, retry"})
	default:
		log.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func pageRequest(c *gin.Context) pagination.Request {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pagination.DefaultLimit)))
	return pagination.NewRequest(page, limit)
}
