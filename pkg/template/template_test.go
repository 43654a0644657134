package template

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("builds template and derives variables in order", func(t *testing.T) {
		tmpl, err := New("Translate {{.text}} into {{.language}}, keeping {{.text}} intact")
		require.NoError(t, err)

		assert.Equal(t, []string{"text", "language"}, tmpl.GetInputVariables())
	})

	t.Run("rejects empty template", func(t *testing.T) {
		_, err := New("")
		require.Error(t, err)

		var tErr *TemplateError
		require.True(t, errors.As(err, &tErr))
		assert.Contains(t, tErr.Reason, "empty")
	})

	t.Run("rejects whitespace-only template", func(t *testing.T) {
		_, err := New("   \n\t ")
		assert.Error(t, err)
	})

	t.Run("rejects malformed placeholder syntax", func(t *testing.T) {
		_, err := New("Sentiment: {{.text}")
		require.Error(t, err)

		var tErr *TemplateError
		assert.True(t, errors.As(err, &tErr))
	})

	t.Run("rejects unclosed action", func(t *testing.T) {
		_, err := New("Hello {{.name")
		var tErr *TemplateError
		assert.True(t, errors.As(err, &tErr))
	})

	t.Run("rejects metadata for unknown variable", func(t *testing.T) {
		_, err := New("{{.task}}", WithVariableMetadata(&Variable{Name: "nope"}))
		var tErr *TemplateError
		assert.True(t, errors.As(err, &tErr))
	})

	t.Run("rejects conditional actions", func(t *testing.T) {
		_, err := New("{{if .flag}}on{{end}} {{.task}}")
		require.Error(t, err)

		var tErr *TemplateError
		require.True(t, errors.As(err, &tErr))
		assert.Contains(t, tErr.Reason, "only {{.name}} placeholders")
	})

	t.Run("rejects pipeline actions", func(t *testing.T) {
		_, err := New("{{.name | printf \"%q\"}}")
		var tErr *TemplateError
		assert.True(t, errors.As(err, &tErr))
	})

	t.Run("MustNew panics on malformed text", func(t *testing.T) {
		assert.Panics(t, func() { MustNew("{{.a}") })
	})
}

func TestFormat(t *testing.T) {
	t.Run("renders exact output with placeholder substituted", func(t *testing.T) {
		tmpl, err := New("Sentiment: {{.text}}")
		require.NoError(t, err)

		result, err := tmpl.Format(map[string]any{"text": "great film"})
		require.NoError(t, err)
		assert.Equal(t, "Sentiment: great film", result)
	})

	t.Run("leaves no placeholder syntax in output", func(t *testing.T) {
		tmpl, err := New("Explain {{.topic}} to a {{.audience}}.")
		require.NoError(t, err)

		result, err := tmpl.Format(map[string]any{
			"topic":    "gravity",
			"audience": "child",
		})
		require.NoError(t, err)
		assert.NotContains(t, result, "{{")
		assert.NotContains(t, result, "}}")
	})

	t.Run("fails naming the first missing variable", func(t *testing.T) {
		tmpl, err := New("{{.a}} and {{.b}}")
		require.NoError(t, err)

		_, err = tmpl.Format(map[string]any{"a": "x"})
		require.Error(t, err)

		var missing *MissingVariableError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "b", missing.Variable)
		assert.Contains(t, missing.Supplied, "a")
	})

	t.Run("reports missing variables in template order", func(t *testing.T) {
		tmpl, err := New("{{.second}} then {{.first}}")
		require.NoError(t, err)

		_, err = tmpl.Format(map[string]any{})
		require.Error(t, err)

		var missing *MissingVariableError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "second", missing.Variable)
	})

	t.Run("ignores extra keys", func(t *testing.T) {
		tmpl, err := New("Hello {{.name}}")
		require.NoError(t, err)

		result, err := tmpl.Format(map[string]any{
			"name":   "Alice",
			"unused": "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello Alice", result)
	})

	t.Run("every built template fails with a typed error, never a raw one", func(t *testing.T) {
		// A variable reachable only through a conditional action would slip
		// past the derived input set and render as a raw text/template
		// failure, so such templates must not build at all.
		_, err := New("{{if .flag}}on{{end}} {{.task}}")
		var tErr *TemplateError
		require.True(t, errors.As(err, &tErr))

		tmpl, err := New("{{.flag}} {{.task}}")
		require.NoError(t, err)

		_, err = tmpl.Format(map[string]any{"task": "gravity"})
		require.Error(t, err)

		var missing *MissingVariableError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "flag", missing.Variable)
	})

	t.Run("repeated renders are deterministic", func(t *testing.T) {
		tmpl, err := New("Summarize: {{.text}}")
		require.NoError(t, err)

		first, err := tmpl.Format(map[string]any{"text": "abc"})
		require.NoError(t, err)
		second, err := tmpl.Format(map[string]any{"text": "abc"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestPartialVariables(t *testing.T) {
	t.Run("partials fill variables not supplied at render time", func(t *testing.T) {
		tmpl, err := New("{{.greeting}} {{.name}}!")
		require.NoError(t, err)

		partial := tmpl.WithPartialVariables(map[string]any{"greeting": "Hello"})

		result, err := partial.Format(map[string]any{"name": "Bob"})
		require.NoError(t, err)
		assert.Equal(t, "Hello Bob!", result)
	})

	t.Run("render values override partials", func(t *testing.T) {
		tmpl, err := New("{{.greeting}} {{.name}}!", WithPartials(map[string]any{"greeting": "Hello"}))
		require.NoError(t, err)

		result, err := tmpl.Format(map[string]any{
			"greeting": "Hi",
			"name":     "Bob",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hi Bob!", result)
	})

	t.Run("WithPartialVariables does not mutate the original", func(t *testing.T) {
		tmpl, err := New("{{.greeting}} {{.name}}!")
		require.NoError(t, err)

		_ = tmpl.WithPartialVariables(map[string]any{"greeting": "Hello"})

		_, err = tmpl.Format(map[string]any{"name": "Bob"})
		var missing *MissingVariableError
		assert.True(t, errors.As(err, &missing))
	})
}

func TestVariableMetadata(t *testing.T) {
	t.Run("defaults apply when value is missing", func(t *testing.T) {
		tmpl, err := New("Age: {{.age}}, Score: {{.score}}",
			WithVariableMetadata(
				&Variable{Name: "score", Default: 0},
			),
		)
		require.NoError(t, err)

		result, err := tmpl.Format(map[string]any{"age": 25})
		require.NoError(t, err)
		assert.Equal(t, "Age: 25, Score: 0", result)
	})

	t.Run("validators run on supplied values", func(t *testing.T) {
		tmpl, err := New("Age: {{.age}}",
			WithVariableMetadata(
				&Variable{
					Name: "age",
					Validator: func(v any) error {
						age, ok := v.(int)
						if !ok || age < 0 {
							return fmt.Errorf("age must be a non-negative integer")
						}
						return nil
					},
				},
			),
		)
		require.NoError(t, err)

		_, err = tmpl.Format(map[string]any{"age": 25})
		assert.NoError(t, err)

		_, err = tmpl.Format(map[string]any{"age": -5})
		assert.Error(t, err)
	})
}

func TestExtractVariables(t *testing.T) {
	t.Run("captures each variable once in first-appearance order", func(t *testing.T) {
		vars, err := extractVariables("{{.b}} {{.a}} {{.b}} {{ .c }}")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, vars)
	})

	t.Run("rejects non-placeholder actions", func(t *testing.T) {
		_, err := extractVariables("{{if .flag}}on{{end}} {{.task}}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "{{if .flag}}")
	})

	t.Run("rejects field chains and pipelines", func(t *testing.T) {
		_, err := extractVariables("{{.user.name}}")
		assert.Error(t, err)

		_, err = extractVariables("{{.name | upper}}")
		assert.Error(t, err)
	})

	t.Run("handles text without placeholders", func(t *testing.T) {
		vars, err := extractVariables("plain instruction text")
		require.NoError(t, err)
		assert.Empty(t, vars)
	})
}
