// Package chain binds a prompt template to a text-generation backend and
// exposes the pair as a single invocable unit.
package chain

import (
	"context"
	"fmt"

	"github.com/killallgit/zeroshot/pkg/backend"
	"github.com/killallgit/zeroshot/pkg/logger"
	"github.com/killallgit/zeroshot/pkg/template"
)

// Chain is an immutable pairing of one template and one backend. It holds
// no per-call state, so a single Chain may be invoked repeatedly and
// concurrently. Construction never triggers a backend call.
type Chain struct {
	template template.Template
	backend  backend.Backend
}

// New creates a chain over an already-built template
func New(tmpl template.Template, b backend.Backend) (*Chain, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("chain requires a template")
	}
	if b == nil {
		return nil, fmt.Errorf("chain requires a backend")
	}

	return &Chain{template: tmpl, backend: b}, nil
}

// NewFromString builds the template from text and creates a chain over it.
// Malformed template text fails here with a *template.TemplateError, never
// at invoke time.
func NewFromString(text string, b backend.Backend) (*Chain, error) {
	tmpl, err := template.New(text)
	if err != nil {
		return nil, err
	}

	return New(tmpl, b)
}

// Invoke renders the template with the given values and dispatches the
// result to the backend as a single-turn request. Exactly one outbound call
// per Invoke; no caching, no retry. Rendering failures
// (*template.MissingVariableError) are detected before any dispatch;
// backend failures (*backend.BackendError) propagate unchanged.
func (c *Chain) Invoke(ctx context.Context, values map[string]any, opts ...backend.Option) (string, error) {
	prompt, err := c.template.Format(values)
	if err != nil {
		return "", err
	}

	logger.Debug("Chain invoking backend %s with rendered prompt (%d chars)", c.backend.Name(), len(prompt))

	return c.backend.Generate(ctx, prompt, opts...)
}

// InputVariables returns the template's input variable names
func (c *Chain) InputVariables() []string {
	return c.template.GetInputVariables()
}

// Backend returns the configured backend
func (c *Chain) Backend() backend.Backend {
	return c.backend
}
