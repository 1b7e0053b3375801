package service

import (
	"context"

	"github.com/dashteam/dashteam/internal/infrastructure/llm"
)

// AssistantService 面板内置的 AI 助手，薄薄一层透传
type AssistantService struct {
	provider llm.Provider
}

func NewAssistantService(provider llm.Provider) *AssistantService {
	return &AssistantService{provider: provider}
}

func (s *AssistantService) Chat(ctx context.Context, history []llm.ChatMessage, message string) (string, error) {
	if message == "" {
		return "", ErrInvalidInput
	}
	return s.provider.Chat(ctx, history, message)
}
