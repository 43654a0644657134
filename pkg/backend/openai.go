package backend

import (
	"fmt"

	"github.com/killallgit/zeroshot/pkg/config"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAI creates a Backend over the OpenAI API. The API key comes from
// configuration; it is never read from the environment here.
func NewOpenAI(cfg config.OpenAIConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key not configured")
	}

	options := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		options = append(options, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM: %w", err)
	}

	return NewFromModel("openai", cfg.Model, llm), nil
}

// FromConfig selects and constructs a backend by the configured provider name
func FromConfig(cfg *config.Config) (Backend, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllama(cfg.Ollama)
	case "openai":
		return NewOpenAI(cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
