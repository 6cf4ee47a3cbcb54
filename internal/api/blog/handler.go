package blog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/checkmarkdevtools/system-notes/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles blog API requests
type Handler struct {
	blogService *service.BlogService
}

// NewHandler creates a new blog handler
func NewHandler(blogService *service.BlogService) *Handler {
	return &Handler{blogService: blogService}
}

// RegisterRoutes registers blog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Search)
	r.GET("/posts", h.Posts)
}

// Search filters the post catalog by optional query and tag.
func (h *Handler) Search(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.blogService.Search(c.Request.Context(), c.Query("query"), c.Query("tag"), limit)
	c.JSON(http.StatusOK, resp)
}

// Posts lists the full catalog.
func (h *Handler) Posts(c *gin.Context) {
	posts := h.blogService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

// parseLimit validates the limit parameter. Out-of-range values are a
// client error, not a silent clamp.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return service.BlogSearchDefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if limit < service.BlogSearchMinLimit || limit > service.BlogSearchMaxLimit {
		return 0, fmt.Errorf("limit must be between %d and %d", service.BlogSearchMinLimit, service.BlogSearchMaxLimit)
	}
	return limit, nil
}
