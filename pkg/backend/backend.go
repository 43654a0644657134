// Package backend defines the text-generation backend contract and adapters
// over hosted model providers. A backend accepts one rendered prompt and
// returns one text completion; retries, streaming, and conversation state
// are deliberately out of scope.
package backend

import (
	"context"
)

// Backend is the minimal request/response contract required by chains:
// one rendered prompt in, one completion out.
type Backend interface {
	// Generate sends a single-turn request and returns the completion text.
	// Provider failures surface as a *BackendError.
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)

	// Name returns the backend name (e.g. "ollama", "openai")
	Name() string

	// Model returns the configured model identifier
	Model() string
}
