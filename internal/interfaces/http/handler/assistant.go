package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appassistant "github.com/synergytrade/backend/internal/application/assistant"
)

// AssistantHandler exposes the business assistant chat endpoint
type AssistantHandler struct {
	BaseHandler
	assistant *appassistant.Service
	logger    *zap.Logger
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistant *appassistant.Service, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{assistant: assistant, logger: logger}
}

// ChatRequest is the request body for the assistant endpoint
type ChatRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// ChatResponse carries the assistant's answer
type ChatResponse struct {
	Answer string `json:"answer"`
}

// RegisterRoutes registers the assistant routes
func (h *AssistantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/chat", h.Chat)
}

// Chat answers a free-form question about the current business state
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	answer, err := h.assistant.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ChatResponse{Answer: answer})
}
