package completion

import (
	"context"
	"fmt"

	"github.com/VincentGefflaut/ShortChat/config"
)

// Gateway sends a rendered prompt to a remote chat-completion service. One
// blocking request per call, no retry; any failure surfaces as a single error.
type Gateway interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewGateway creates a completion gateway based on configuration. An empty
// API key is allowed: the gateway is constructed anyway and every request
// fails at call time.
func NewGateway(cfg config.CompletionConfig, apiKey string) (Gateway, error) {
	switch cfg.Provider {
	case "mistral", "":
		return NewMistralGateway(apiKey, cfg.Model), nil
	case "openai":
		return NewOpenAIGateway(apiKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// NewMistralGateway creates a gateway for the Mistral chat completions API
func NewMistralGateway(apiKey, model string) Gateway {
	if model == "" {
		model = "mistral-large-latest"
	}
	return newChatClient("mistral", "https://api.mistral.ai/v1/chat/completions", apiKey, model)
}

// NewOpenAIGateway creates a gateway for the OpenAI chat completions API
func NewOpenAIGateway(apiKey, model string) Gateway {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newChatClient("openai", "https://api.openai.com/v1/chat/completions", apiKey, model)
}
