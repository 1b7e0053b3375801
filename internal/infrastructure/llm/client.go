package llm

import "context"

// ChatMessage 一轮对话消息
type ChatMessage struct {
	Role    string `json:"role"` // "user" 或 "assistant"
	Content string `json:"content"`
}

// Provider 定义了助手模型的通用行为
type Provider interface {
	// Chat 接收历史对话和当前输入，返回助手的回复文本
	Chat(ctx context.Context, history []ChatMessage, message string) (string, error)
}
