package backend

import (
	"context"
	"errors"

	"github.com/killallgit/zeroshot/pkg/logger"
	"github.com/tmc/langchaingo/llms"
)

// LangChainBackend adapts any langchaingo model to the Backend interface.
// Every Generate call is a single human message; the first choice of the
// response is the completion.
type LangChainBackend struct {
	model     llms.Model
	name      string
	modelName string
}

// NewFromModel wraps a langchaingo model as a Backend
func NewFromModel(name, modelName string, model llms.Model) *LangChainBackend {
	return &LangChainBackend{
		model:     model,
		name:      name,
		modelName: modelName,
	}
}

// Generate sends a single-turn request and returns the completion text
func (b *LangChainBackend) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	logger.Debug("Dispatching prompt to backend %s (%d chars)", b.name, len(prompt))

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	response, err := b.model.GenerateContent(ctx, messages, applyOptions(opts).llmOptions()...)
	if err != nil {
		return "", &BackendError{Backend: b.name, Err: err}
	}

	if response == nil || len(response.Choices) == 0 {
		return "", &BackendError{Backend: b.name, Err: errors.New("no response choices available")}
	}

	return response.Choices[0].Content, nil
}

// Name returns the backend name
func (b *LangChainBackend) Name() string {
	return b.name
}

// Model returns the configured model identifier
func (b *LangChainBackend) Model() string {
	return b.modelName
}
