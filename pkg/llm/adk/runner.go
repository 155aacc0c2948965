// Package adk runs prompts through a Google ADK agent backed by a Gemini model.
package adk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const (
	appName   = "resume-parser"
	agentName = "resume_parser_agent"
	userID    = "resume-parser"
)

// Runner adapts an ADK llm agent to the llm.ChatModel port. Each Ask builds a
// fresh agent so the system prompt can change per call, and runs it in a
// throwaway in-memory session.
type Runner struct {
	model    model.LLM
	sessions session.Service
}

// New creates a Gemini-backed runner. baseURL may be empty for the public endpoint.
func New(ctx context.Context, apiKey, baseURL, modelName string) (*Runner, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	cc := &genai.ClientConfig{APIKey: apiKey}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	m, err := gemini.NewModel(ctx, modelName, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return NewWithModel(m), nil
}

// NewWithModel wraps any ADK model.
func NewWithModel(m model.LLM) *Runner {
	return &Runner{model: m, sessions: session.InMemoryService()}
}

func (r *Runner) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	a, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       r.model,
		Description: "Parses and analyzes resumes",
		Instruction: systemPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent: %w", err)
	}
	run, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          a,
		SessionService: r.sessions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create runner: %w", err)
	}

	created, err := r.sessions.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	sess := created.Session
	defer func() {
		_ = r.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   sess.AppName(),
			UserID:    sess.UserID(),
			SessionID: sess.ID(),
		})
	}()

	msg := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: userPrompt}},
	}
	var output string
	for event, err := range run.Run(ctx, sess.UserID(), sess.ID(), msg, agent.RunConfig{}) {
		if err != nil {
			return "", err
		}
		if event == nil || !event.IsFinalResponse() || event.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range event.Content.Parts {
			if p != nil {
				sb.WriteString(p.Text)
			}
		}
		if sb.Len() > 0 {
			output = sb.String()
		}
	}
	if output == "" {
		return "", errors.New("empty agent response")
	}
	return output, nil
}

// Name returns the underlying model identifier.
func (r *Runner) Name() string { return r.model.Name() }
