package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/nonx2/yuuna-server/api/v1"
)

// GetHealth reports that the server is up
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, v1.Health{Status: "ok"})
}
