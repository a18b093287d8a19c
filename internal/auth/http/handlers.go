package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghulkannan/portfolio-api/internal/auth"
)

type Handler struct {
	tokens *auth.Tokens
}

func NewHandler(tokens *auth.Tokens) *Handler {
	return &Handler{tokens: tokens}
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("admin login: bad request body: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	token, err := h.tokens.Issue(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
			return
		}
		log.Printf("admin login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// verify runs behind RequireAdmin, so reaching the handler means the
// token already passed signature and expiry checks.
func (h *Handler) verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"admin":   c.GetBool(auth.CtxAdmin),
	})
}
