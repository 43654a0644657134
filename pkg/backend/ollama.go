package backend

import (
	"fmt"

	"github.com/killallgit/zeroshot/pkg/config"
	"github.com/tmc/langchaingo/llms/ollama"
)

// NewOllama creates a Backend over a local or remote Ollama daemon
func NewOllama(cfg config.OllamaConfig) (Backend, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.URL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama LLM: %w", err)
	}

	return NewFromModel("ollama", cfg.Model, llm), nil
}
