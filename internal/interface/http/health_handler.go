package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/shopcart-api/pkg/response"
)

// Health GET /api/health
func Health(c *gin.Context) {
	response.OK(c, http.StatusOK, "ok")
}
