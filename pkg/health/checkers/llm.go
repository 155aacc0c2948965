package checkers

import (
	"context"
	"errors"
)

// LLMChecker reports not ready until model credentials are configured. It does
// not call the provider.
type LLMChecker struct {
	apiKey string
	model  string
}

func NewLLMChecker(apiKey, model string) *LLMChecker {
	return &LLMChecker{apiKey: apiKey, model: model}
}

func (c *LLMChecker) Name() string { return "llm" }

func (c *LLMChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.apiKey == "" {
		return errors.New("api key is not configured")
	}
	if c.model == "" {
		return errors.New("model is not configured")
	}
	return nil
}
