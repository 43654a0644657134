// Package compare runs named prompt template variants against one shared
// task and collects ordered side-by-side results. It is a presentation aid:
// no scoring, ranking, or aggregate judgment is computed.
package compare

import (
	"fmt"

	"github.com/killallgit/zeroshot/pkg/template"
)

// Set is an ordered mapping from variant name to template. Insertion order
// is preserved and determines run and display order.
type Set struct {
	names     []string
	templates map[string]template.Template
}

// NewSet creates an empty comparison set
func NewSet() *Set {
	return &Set{
		templates: make(map[string]template.Template),
	}
}

// Add appends a named variant. Names must be unique within the set.
func (s *Set) Add(name string, tmpl template.Template) error {
	if name == "" {
		return fmt.Errorf("variant name must not be empty")
	}
	if tmpl == nil {
		return fmt.Errorf("variant %s has no template", name)
	}
	if _, exists := s.templates[name]; exists {
		return fmt.Errorf("variant %s already added", name)
	}

	s.names = append(s.names, name)
	s.templates[name] = tmpl
	return nil
}

// AddString builds a template from text and appends it as a named variant
func (s *Set) AddString(name, text string) error {
	tmpl, err := template.New(text)
	if err != nil {
		return fmt.Errorf("variant %s: %w", name, err)
	}

	return s.Add(name, tmpl)
}

// Names returns the variant names in insertion order
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Get retrieves a variant's template by name
func (s *Set) Get(name string) (template.Template, bool) {
	tmpl, ok := s.templates[name]
	return tmpl, ok
}

// Len returns the number of variants
func (s *Set) Len() int {
	return len(s.names)
}
