package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// AssistantClient 走 OpenAI 兼容协议的助手实现（DeepSeek/Gemini 代理均可）
type AssistantClient struct {
	modelName string
	client    *openai.Client
}

func NewAssistantClient(apiKey, baseURL, modelName string) *AssistantClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &AssistantClient{
		modelName: modelName,
		client:    openai.NewClientWithConfig(config),
	}
}

const systemPrompt = `Eres el asistente del panel de gestión Dashteam.
Ayudas al usuario con sus contactos, seguimientos, finanzas y su plan de 30 días.
Responde de forma breve y práctica, en el idioma del usuario.`

func (a *AssistantClient) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf("%s\nFecha actual: %s.", systemPrompt, time.Now().Format("2006-01-02")),
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.modelName,
		Messages:    msgs,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
