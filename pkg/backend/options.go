package backend

import (
	"github.com/tmc/langchaingo/llms"
)

// Option configures a single Generate call. Options are passed opaquely
// through to the underlying provider.
type Option func(*callOptions)

type callOptions struct {
	temperature *float64
	maxTokens   *int
	model       string
}

// WithTemperature sets the sampling temperature for one call
func WithTemperature(t float64) Option {
	return func(o *callOptions) {
		o.temperature = &t
	}
}

// WithMaxTokens caps the completion length for one call
func WithMaxTokens(n int) Option {
	return func(o *callOptions) {
		o.maxTokens = &n
	}
}

// WithModel overrides the configured model for one call
func WithModel(model string) Option {
	return func(o *callOptions) {
		o.model = model
	}
}

// llmOptions translates call options into langchaingo call options
func (o *callOptions) llmOptions() []llms.CallOption {
	var opts []llms.CallOption

	if o.temperature != nil {
		opts = append(opts, llms.WithTemperature(*o.temperature))
	}
	if o.maxTokens != nil {
		opts = append(opts, llms.WithMaxTokens(*o.maxTokens))
	}
	if o.model != "" {
		opts = append(opts, llms.WithModel(o.model))
	}

	return opts
}

func applyOptions(opts []Option) *callOptions {
	options := &callOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
