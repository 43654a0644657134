package template

import (
	"github.com/tmc/langchaingo/llms"
)

// Template represents a generic prompt template
type Template interface {
	// Format formats the template with the given variables
	Format(values map[string]any) (string, error)

	// FormatPrompt formats the template as a prompt value
	FormatPrompt(values map[string]any) (llms.PromptValue, error)

	// GetInputVariables returns the list of input variable names in the
	// order they first appear in the template text
	GetInputVariables() []string

	// WithPartialVariables creates a new template with partial variables set
	WithPartialVariables(partials map[string]any) Template
}

// Loader loads templates from various sources
type Loader interface {
	// Load loads a template by name/path
	Load(name string) (Template, error)
}

// Registry manages prompt templates
type Registry interface {
	// Register registers a template with a name
	Register(name string, template Template) error

	// Get retrieves a template by name
	Get(name string) (Template, error)

	// List returns all registered template names
	List() []string

	// Describe returns a summary of every registered template
	Describe() []Description

	// Clear removes all registered templates
	Clear()
}

// Description summarizes a registered template: its name and the input
// variables it requires, in order of first appearance.
type Description struct {
	Name           string
	InputVariables []string
}

// Variable represents a template variable with metadata. Every placeholder
// is required unless a Default or a partial value covers it.
type Variable struct {
	Name        string
	Default     any
	Description string
	Validator   func(value any) error
}
