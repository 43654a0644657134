package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec defines the structure of a template file
type Spec struct {
	Name     string         `json:"name" yaml:"name"`
	Template string         `json:"template" yaml:"template"`
	Metadata []*Variable    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Partials map[string]any `json:"partials,omitempty" yaml:"partials,omitempty"`
}

// FileLoader loads templates from files. Files ending in .json, .yaml, or
// .yml are parsed as a Spec; anything else is treated as raw template text.
type FileLoader struct {
	baseDir string
}

// NewFileLoader creates a new file-based template loader
func NewFileLoader(baseDir string) *FileLoader {
	return &FileLoader{baseDir: baseDir}
}

// Load loads a template by name/path
func (f *FileLoader) Load(name string) (Template, error) {
	path := f.resolvePath(name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	if isStructured(path) {
		return loadSpec(data, path)
	}

	return New(string(data))
}

// resolvePath resolves the template path relative to the loader's base dir
func (f *FileLoader) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.baseDir, name)
}

// LoadAll loads every structured template file in the loader's base dir into
// the given registry, keyed by file name without extension.
func (f *FileLoader) LoadAll(registry Registry) error {
	for _, ext := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(f.baseDir, ext))
		if err != nil {
			return fmt.Errorf("failed to list template files: %w", err)
		}

		for _, file := range matches {
			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

			template, err := f.Load(filepath.Base(file))
			if err != nil {
				return fmt.Errorf("failed to load template %s: %w", name, err)
			}

			if err := registry.Register(name, template); err != nil {
				return err
			}
		}
	}

	return nil
}

// StringLoader loads templates from in-memory strings
type StringLoader struct {
	templates map[string]string
}

// NewStringLoader creates a new string-based template loader
func NewStringLoader() *StringLoader {
	return &StringLoader{
		templates: make(map[string]string),
	}
}

// Add adds a named template string
func (s *StringLoader) Add(name, text string) {
	s.templates[name] = text
}

// Load loads a template by name
func (s *StringLoader) Load(name string) (Template, error) {
	text, exists := s.templates[name]
	if !exists {
		return nil, fmt.Errorf("template %s not found", name)
	}

	return New(text)
}

func isStructured(path string) bool {
	return strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// loadSpec builds a template from a structured JSON/YAML spec file
func loadSpec(data []byte, path string) (Template, error) {
	var spec Spec

	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse JSON template: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse YAML template: %w", err)
		}
	}

	options := []Option{}
	if len(spec.Metadata) > 0 {
		options = append(options, WithVariableMetadata(spec.Metadata...))
	}
	if len(spec.Partials) > 0 {
		options = append(options, WithPartials(spec.Partials))
	}

	return New(spec.Template, options...)
}

// Quick creates a template from a string, panicking on malformed text.
// Convenience for inline templates in examples and tests.
func Quick(text string) Template {
	return MustNew(text)
}
