package controller

import (
	"log/slog"
	"net/http"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/infrastructure/llm"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	service *service.AssistantService
}

func NewAssistantController(s *service.AssistantService) *AssistantController {
	return &AssistantController{service: s}
}

type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []llm.ChatMessage `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat 助手对话
// @Tags Assistant
// @Security BearerAuth
// @Router /assistant/chat [post]
func (ctrl *AssistantController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	reply, err := ctrl.service.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		slog.Error("assistant chat failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "assistant unavailable")
		return
	}
	response.Success(c, ChatResponse{Reply: reply})
}
