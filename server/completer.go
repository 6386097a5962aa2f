package server

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Completer is the slice of the chat-completion client the handler depends
// on. It is injected at construction so tests can substitute a double;
// *openai.Client satisfies it.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewCompleter builds an OpenAI-compatible client for the given credentials.
// An empty baseURL keeps the SDK default.
func NewCompleter(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}
