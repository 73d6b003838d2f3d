package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
)

// bindJSON renders a 400 and returns false when the body does not decode into input
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}

// pathID parses the :id route parameter
func pathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound(resource+" not found"))
		return uuid.Nil, false
	}
	return id, true
}

// resourceError renders err, naming the resource on a miss
func resourceError(c *gin.Context, resource string, err error) {
	if domainerrors.IsNotFound(err) {
		response.Error(c, domainerrors.NotFound(resource+" not found"))
		return
	}
	response.Error(c, err)
}
