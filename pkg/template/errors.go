package template

import (
	"fmt"
	"sort"
	"strings"
)

// TemplateError reports malformed template text. It is returned at
// construction time, never during rendering.
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid template: %s", e.Reason)
}

// MissingVariableError reports a placeholder that had no value supplied at
// render time. Variable is the first unresolved placeholder in template
// order; Supplied lists the keys that were provided, for diagnostics.
type MissingVariableError struct {
	Variable string
	Supplied []string
}

func (e *MissingVariableError) Error() string {
	if len(e.Supplied) == 0 {
		return fmt.Sprintf("missing value for template variable %q (no values supplied)", e.Variable)
	}
	supplied := append([]string(nil), e.Supplied...)
	sort.Strings(supplied)
	return fmt.Sprintf("missing value for template variable %q (supplied: %s)", e.Variable, strings.Join(supplied, ", "))
}
