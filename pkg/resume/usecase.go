package resume

import (
	"context"
	"strings"
	"time"
)

// Invoker turns resume text into a validated Profile, typically by calling an LLM agent.
type Invoker interface {
	Invoke(ctx context.Context, resumeText string) (Profile, error)
}

// ParseResult is the structured outcome for one uploaded document.
type ParseResult struct {
	FileType   string  `json:"file_type"`
	Filename   string  `json:"filename"`
	Structured Profile `json:"structured"`
}

// ParseService describes the application use case: document bytes in, profile out.
type ParseService interface {
	Parse(ctx context.Context, filename, mimeType string, data []byte) (ParseResult, error)
}

type parseService struct {
	agent   Invoker
	timeout time.Duration
}

// NewParseService creates the default implementation. A zero timeout leaves
// the agent call bounded only by the caller's context.
func NewParseService(agent Invoker, timeout time.Duration) ParseService {
	return &parseService{agent: agent, timeout: timeout}
}

func (s *parseService) Parse(ctx context.Context, filename, mimeType string, data []byte) (ParseResult, error) {
	if !IsSupported(mimeType) {
		return ParseResult{}, ErrUnsupportedType
	}
	text, err := Extract(data, mimeType)
	if err != nil {
		return ParseResult{}, err
	}
	// the docx path has no emptiness check of its own
	if strings.TrimSpace(text) == "" {
		return ParseResult{}, ErrEmptyText
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	profile, err := s.agent.Invoke(ctx, text)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{
		FileType:   mimeType,
		Filename:   filename,
		Structured: profile,
	}, nil
}
