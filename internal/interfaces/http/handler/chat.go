package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/telco/backend/internal/application/chat"
	"github.com/telco/backend/internal/interfaces/http/middleware"
)

// ChatHandler handles the conversational self-service endpoint
type ChatHandler struct {
	BaseHandler
	engine *chat.Engine
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// ChatRequest represents one inbound conversation message
type ChatRequest struct {
	ConversationID string `json:"conversation_id" binding:"required,min=1,max=128"`
	Message        string `json:"message" binding:"max=2000"`
}

// ChatResponse represents the assistant's reply for one turn
type ChatResponse struct {
	ConversationID string    `json:"conversation_id"`
	Reply          string    `json:"reply"`
	State          string    `json:"state"`
	Timestamp      time.Time `json:"timestamp"`
}

// HandleMessage processes one conversation turn
func (h *ChatHandler) HandleMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	turn, err := h.engine.HandleMessage(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ChatResponse{
		ConversationID: req.ConversationID,
		Reply:          turn.Reply,
		State:          turn.State,
		Timestamp:      turn.Timestamp,
	})
}

// ResetConversation discards the conversation's session so the next message
// starts from the menu
func (h *ChatHandler) ResetConversation(c *gin.Context) {
	conversationID := c.Param("id")

	turn, err := h.engine.HandleMessage(c.Request.Context(), conversationID, "restart")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ChatResponse{
		ConversationID: conversationID,
		Reply:          turn.Reply,
		State:          turn.State,
		Timestamp:      turn.Timestamp,
	})
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("", h.HandleMessage)
		chatGroup.POST("/:id/reset", h.ResetConversation)
	}
}
