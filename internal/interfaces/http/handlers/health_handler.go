package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the process is serving.
// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
