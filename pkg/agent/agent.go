// Package agent asks an LLM to turn resume text into a structured profile.
package agent

import (
	"context"
	"time"

	"github.com/artem13815/resume-parser/pkg/llm"
	"github.com/artem13815/resume-parser/pkg/resume"
)

// Agent implements resume.Invoker on top of a chat model.
type Agent struct {
	name  string
	model llm.ChatModel
	now   func() time.Time
}

var _ resume.Invoker = (*Agent)(nil)

func New(name string, model llm.ChatModel) *Agent {
	return &Agent{name: name, model: model, now: time.Now}
}

// Name is the identity embedded in the instructions.
func (a *Agent) Name() string { return a.name }

// ModelName reports the model identifier when the model exposes one.
func (a *Agent) ModelName() string {
	if n, ok := a.model.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// Invoke sends freshly built instructions plus the resume text to the model
// and shapes the reply into a Profile. Model errors are returned unchanged;
// nothing is retried here.
func (a *Agent) Invoke(ctx context.Context, resumeText string) (resume.Profile, error) {
	raw, err := a.model.Ask(ctx, Instructions(a.name, a.now()), resumeText)
	if err != nil {
		return resume.Profile{}, err
	}
	return resume.DecodeProfile([]byte(llm.CleanJSON(raw)))
}
