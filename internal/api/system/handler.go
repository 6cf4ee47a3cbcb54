package system

import (
	"errors"
	"net/http"
	"strings"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"github.com/checkmarkdevtools/system-notes/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles the file-backed portfolio endpoints
type Handler struct {
	contentService *service.ContentService
}

// NewHandler creates a new system content handler
func NewHandler(contentService *service.ContentService) *Handler {
	return &Handler{contentService: contentService}
}

// RegisterRoutes registers content routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/projects", h.Projects)
	r.GET("/about", h.About)
	r.GET("/system/doc/*path", h.Doc)
}

// Projects lists the portfolio projects.
func (h *Handler) Projects(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Projects())
}

// About returns the about-page content.
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.About())
}

// Doc serves one system document by relative path.
func (h *Handler) Doc(c *gin.Context) {
	relPath := strings.TrimPrefix(c.Param("path"), "/")

	doc, err := h.contentService.Doc(relPath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read document"})
		return
	}

	c.JSON(http.StatusOK, doc)
}
