package http

import (
	"github.com/gin-gonic/gin"

	"github.com/raghulkannan/portfolio-api/internal/auth"
)

// Register attaches the login and verify routes to the admin group.
// Login is the only unguarded admin route.
func (h *Handler) Register(admin *gin.RouterGroup) {
	admin.POST("/login", h.login)
	admin.GET("/verify", auth.RequireAdmin(h.tokens), h.verify)
}
