package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the resume status/download route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/resume", h.resume)
}

// RegisterAdmin attaches the guarded upload routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/upload", h.uploadImage)
	rg.DELETE("/upload", h.deleteImage)
	rg.POST("/resume", h.uploadResume)
	rg.DELETE("/resume", h.deleteResume)
}
