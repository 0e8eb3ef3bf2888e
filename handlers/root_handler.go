package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/types"
)

const apiGreeting = "Gruha Homes API"

// Root godoc
// @Summary      API root
// @Description  Returns the API greeting message
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.MessageResponse
// @Router       /api/ [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.MessageResponse{Message: apiGreeting})
}
