package handlers

import (
	"net/http"

	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Check authentication
// @Description Echoes the caller resolved from the bearer token.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router / [get]
func getHome(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{"service": "erp_backend", "userID": userID})
}

func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
