package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raghulkannan/portfolio-api/internal/contacts/domain"
	"github.com/raghulkannan/portfolio-api/internal/contacts/service"
	"github.com/raghulkannan/portfolio-api/internal/validation"
)

type Handler struct {
	svc *service.ContactService

	// development exposes underlying delivery-error detail in 500
	// responses; never enabled in production.
	development bool
}

func NewHandler(svc *service.ContactService, development bool) *Handler {
	return &Handler{svc: svc, development: development}
}

type submitReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	contact, err := h.svc.Submit(c.Request.Context(), &domain.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		var fields validation.FieldErrors
		switch {
		case errors.As(err, &fields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required", "fields": fields})
		case errors.Is(err, domain.ErrEmailDelivery):
			log.Printf("contact notification failed: %v", err)
			body := gin.H{"error": "Failed to send message. Please try again later."}
			if h.development {
				body["details"] = err.Error()
			}
			c.JSON(http.StatusInternalServerError, body)
		default:
			log.Printf("contact submission failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully", "id": contact.ID})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("listing contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type setReadReq struct {
	Read *bool `json:"read" binding:"required"`
}

func (h *Handler) setRead(c *gin.Context) {
	var req setReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	contact, err := h.svc.SetRead(c.Request.Context(), c.Param("id"), *req.Read)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		log.Printf("updating contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}
