package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the unauthenticated project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.getByID)
}

// RegisterAdmin attaches the guarded CRUD routes. The group is
// expected to carry auth.RequireAdmin already.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.POST("/projects", h.create)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)
}
