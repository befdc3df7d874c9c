package handlers

import (
	"net/http"

	"yelpcamp/internal/render"

	"github.com/gin-gonic/gin"
)

// Home handles GET /
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, render.PageHome, gin.H{})
}
