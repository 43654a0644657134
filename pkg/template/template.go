package template

import (
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// PromptTemplate is a concrete implementation of the Template interface
// that wraps langchaingo's PromptTemplate. The set of required placeholder
// names is derived from the template text at construction time, so a
// malformed template is rejected before it is ever rendered.
type PromptTemplate struct {
	template         prompts.PromptTemplate
	text             string
	inputVariables   []string
	partialVariables map[string]any
	metadata         map[string]*Variable
}

// Option is a functional option for configuring a PromptTemplate
type Option func(*PromptTemplate) error

// New creates a prompt template from text using Go template placeholder
// syntax ({{.name}}). It fails with a *TemplateError if the text is empty,
// the placeholder syntax is malformed, or an action other than a plain
// {{.name}} placeholder appears. Restricting construction to plain
// placeholders keeps the accepted set render-safe: every variable a
// template can reference is derived here and checked before rendering.
func New(text string, options ...Option) (*PromptTemplate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &TemplateError{Template: text, Reason: "template text is empty"}
	}

	if _, err := texttemplate.New("prompt").Parse(text); err != nil {
		return nil, &TemplateError{Template: text, Reason: err.Error()}
	}

	vars, err := extractVariables(text)
	if err != nil {
		return nil, &TemplateError{Template: text, Reason: err.Error()}
	}

	pt := &PromptTemplate{
		template:         prompts.NewPromptTemplate(text, vars),
		text:             text,
		inputVariables:   vars,
		partialVariables: make(map[string]any),
		metadata:         make(map[string]*Variable),
	}

	for _, opt := range options {
		if err := opt(pt); err != nil {
			return nil, err
		}
	}

	return pt, nil
}

// MustNew creates a prompt template and panics if the text is malformed.
// Intended for templates defined as package-level constants.
func MustNew(text string, options ...Option) *PromptTemplate {
	pt, err := New(text, options...)
	if err != nil {
		panic(fmt.Sprintf("failed to build template: %v", err))
	}
	return pt
}

// WithPartials sets partial variables at construction time
func WithPartials(partials map[string]any) Option {
	return func(pt *PromptTemplate) error {
		for k, v := range partials {
			pt.partialVariables[k] = v
		}
		return nil
	}
}

// WithVariableMetadata sets metadata for variables
func WithVariableMetadata(variables ...*Variable) Option {
	return func(pt *PromptTemplate) error {
		for _, v := range variables {
			if !containsString(pt.inputVariables, v.Name) {
				return &TemplateError{
					Template: pt.text,
					Reason:   fmt.Sprintf("metadata references unknown variable %q", v.Name),
				}
			}
			pt.metadata[v.Name] = v
		}
		return nil
	}
}

// Format formats the template with the given values. Every placeholder must
// resolve through values, partials, or a metadata default; otherwise it
// fails with a *MissingVariableError naming the first unresolved
// placeholder. Extra keys in values are ignored.
func (p *PromptTemplate) Format(values map[string]any) (string, error) {
	merged := p.mergeValues(values)

	if err := p.validateVariables(merged, values); err != nil {
		return "", err
	}

	return p.template.Format(merged)
}

// FormatPrompt formats the template as a prompt value
func (p *PromptTemplate) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	merged := p.mergeValues(values)

	if err := p.validateVariables(merged, values); err != nil {
		return nil, err
	}

	return p.template.FormatPrompt(merged)
}

// GetInputVariables returns input variable names in order of first appearance
func (p *PromptTemplate) GetInputVariables() []string {
	return append([]string(nil), p.inputVariables...)
}

// Text returns the raw template text
func (p *PromptTemplate) Text() string {
	return p.text
}

// WithPartialVariables creates a new template with partial variables set.
// The receiver is not modified.
func (p *PromptTemplate) WithPartialVariables(partials map[string]any) Template {
	newTemplate := &PromptTemplate{
		template:         p.template,
		text:             p.text,
		inputVariables:   p.inputVariables,
		partialVariables: make(map[string]any),
		metadata:         p.metadata,
	}

	for k, v := range p.partialVariables {
		newTemplate.partialVariables[k] = v
	}
	for k, v := range partials {
		newTemplate.partialVariables[k] = v
	}

	return newTemplate
}

// mergeValues merges partial variables, metadata defaults, and provided values
func (p *PromptTemplate) mergeValues(values map[string]any) map[string]any {
	merged := make(map[string]any)

	for k, v := range p.partialVariables {
		merged[k] = v
	}

	for k, v := range values {
		merged[k] = v
	}

	for _, varName := range p.inputVariables {
		if _, exists := merged[varName]; !exists {
			if meta, ok := p.metadata[varName]; ok && meta.Default != nil {
				merged[varName] = meta.Default
			}
		}
	}

	return merged
}

// validateVariables checks that every placeholder resolves and runs any
// per-variable validators. The first unresolved placeholder in template
// order is reported.
func (p *PromptTemplate) validateVariables(merged, supplied map[string]any) error {
	for _, varName := range p.inputVariables {
		value, exists := merged[varName]
		if !exists {
			return &MissingVariableError{
				Variable: varName,
				Supplied: mapKeys(supplied),
			}
		}

		if meta, ok := p.metadata[varName]; ok && meta.Validator != nil {
			if err := meta.Validator(value); err != nil {
				return fmt.Errorf("validation failed for variable %s: %w", varName, err)
			}
		}
	}

	return nil
}

// extractVariables extracts {{.var}} placeholder names from template text in
// order of first appearance. Any other action (if, range, pipelines,
// comments) is rejected: variables referenced inside such actions would
// escape the derived input set and surface as raw rendering failures
// instead of a MissingVariableError.
func extractVariables(text string) ([]string, error) {
	seen := make(map[string]bool)
	var vars []string

	start := 0
	for {
		idx := strings.Index(text[start:], "{{")
		if idx == -1 {
			break
		}
		start += idx + 2

		end := strings.Index(text[start:], "}}")
		if end == -1 {
			break
		}

		action := strings.TrimSpace(text[start : start+end])
		varName, ok := placeholderName(action)
		if !ok {
			return nil, fmt.Errorf("unsupported action {{%s}}: only {{.name}} placeholders are allowed", action)
		}
		if !seen[varName] {
			seen[varName] = true
			vars = append(vars, varName)
		}
		start += end + 2
	}

	return vars, nil
}

// placeholderName returns the variable name of a plain {{.name}} action,
// or ok=false for anything else.
func placeholderName(action string) (string, bool) {
	if !strings.HasPrefix(action, ".") {
		return "", false
	}
	name := strings.TrimPrefix(action, ".")
	if name == "" {
		return "", false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return "", false
			}
		default:
			return "", false
		}
	}
	return name, true
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
