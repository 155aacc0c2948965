package agent

import (
	"context"
	"fmt"

	"github.com/artem13815/resume-parser/pkg/config"
	"github.com/artem13815/resume-parser/pkg/llm"
	"github.com/artem13815/resume-parser/pkg/llm/adk"
	"github.com/artem13815/resume-parser/pkg/llm/openai"
)

// NewChatModel builds the model client selected by cfg.LLMProvider.
func NewChatModel(ctx context.Context, cfg config.Config) (llm.ChatModel, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI, "":
		return openai.New(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, openai.WithTimeout(cfg.AgentTimeout)), nil
	case config.ProviderGemini:
		r, err := adk.New(ctx, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("init gemini runner: %w", err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

// FromConfig wires a ready-to-use Agent for cfg.
func FromConfig(ctx context.Context, cfg config.Config) (*Agent, error) {
	m, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg.AgentName, m), nil
}
