package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the contact-form submission route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// RegisterAdmin attaches the guarded inbox routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/contacts", h.list)
	rg.PUT("/contacts/:id", h.setRead)
}
