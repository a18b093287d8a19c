package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghulkannan/portfolio-api/internal/uploads"
)

type Handler struct {
	store *uploads.Store
}

func NewHandler(store *uploads.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) uploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("opening uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}
	defer src.Close()

	saved, err := h.store.SaveImage(file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPG, PNG, WEBP, GIF images are allowed"})
		case errors.Is(err, uploads.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "File must be less than 5MB"})
		default:
			log.Printf("saving uploaded image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": saved.URL,
		"filename": saved.Filename,
	})
}

func (h *Handler) deleteImage(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No filename provided"})
		return
	}

	if err := h.store.DeleteImage(filename); err != nil {
		if errors.Is(err, uploads.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		log.Printf("deleting image %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted successfully"})
}

// resume handles the public resume endpoint: a status JSON by
// default, the PDF itself with ?action=download.
func (h *Handler) resume(c *gin.Context) {
	info := h.store.Resume()

	if c.Query("action") == "download" {
		if !info.Exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.FileAttachment(h.store.ResumePath(), "resume.pdf")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":      info.Exists,
		"size":        info.Size,
		"updatedAt":   info.UpdatedAt,
		"downloadUrl": "/api/resume?action=download",
	})
}

func (h *Handler) uploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("opening uploaded resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload resume"})
		return
	}
	defer src.Close()

	if err := h.store.SaveResume(file.Header.Get("Content-Type"), src, file.Size); err != nil {
		switch {
		case errors.Is(err, uploads.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		case errors.Is(err, uploads.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size must be less than 5MB"})
		default:
			log.Printf("saving resume: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload resume"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Resume uploaded successfully",
		"fileName":    "resume.pdf",
		"downloadUrl": "/api/resume?action=download",
	})
}

func (h *Handler) deleteResume(c *gin.Context) {
	if err := h.store.DeleteResume(); err != nil {
		if errors.Is(err, uploads.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		log.Printf("deleting resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}
