package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/repository"
	"github.com/Lucien-Luc/Programs/internal/service"
)

// parseID reads a numeric path id; a malformed id answers 400 and reports
// false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError translates a service error to the nearest taxonomy bucket:
// validation 400, not-found 404, bad credentials 401, everything else a
// generic 500 with the detail logged server-side only.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": verr.Fields})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
