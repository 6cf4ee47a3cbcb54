package chat

import (
	"net/http"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"github.com/checkmarkdevtools/system-notes/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles chat API requests
type Handler struct {
	chatService *service.ChatService
}

// NewHandler creates a new chat handler
func NewHandler(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

// Chat answers one free-text message. A missing message field is the only
// error status this endpoint produces; assistant or search failures still
// answer 200 with the fallback reply.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := h.chatService.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, domain.ChatResponse{Reply: reply})
}
