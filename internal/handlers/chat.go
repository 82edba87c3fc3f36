package handlers

import (
	"github.com/gin-gonic/gin"

	"servicehub-server/internal/chatbot"
	"servicehub-server/internal/utils"
)

// ChatHandler answers support questions from a fixed rule list.
type ChatHandler struct {
	Rules []chatbot.Rule
}

// NewChatHandler creates a ChatHandler with the default rule set.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{Rules: chatbot.DefaultRules}
}

// ChatRequest is one user message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat returns the canned reply for a message.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	utils.Success(c, "Reply", gin.H{"reply": chatbot.Reply(h.Rules, req.Message)})
}
