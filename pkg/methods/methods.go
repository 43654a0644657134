// Package methods provides built-in zero-shot prompting templates: direct
// task specification, format specification, step-by-step reasoning, and
// comparative analysis. Each template works from the instruction alone,
// with no worked examples in the prompt.
package methods

import (
	"context"
	"fmt"

	"github.com/killallgit/zeroshot/pkg/backend"
	"github.com/killallgit/zeroshot/pkg/chain"
	"github.com/killallgit/zeroshot/pkg/compare"
	"github.com/killallgit/zeroshot/pkg/template"
)

// Registered template names
const (
	TemplateDirect      = "zero_shot_direct"
	TemplateFormat      = "zero_shot_format"
	TemplateSteps       = "zero_shot_steps"
	TemplateComparative = "zero_shot_comparative"
)

var (
	directTemplate = template.MustNew(
		`{{.task}}`,
	)

	formatTemplate = template.MustNew(
		`{{.task}}

Respond in the following format: {{.format}}`,
	)

	stepsTemplate = template.MustNew(
		`Problem: {{.problem}}

Let's work through this step-by-step:
1. Identify what is known
2. Determine what needs to be found
3. Work through the solution
4. Verify the answer

Solution:`,
	)

	comparativeTemplate = template.MustNew(
		`Compare {{.subject_a}} and {{.subject_b}}.

Criteria: {{.criteria}}

For each criterion, describe how the two compare, then summarize the key differences.`,
	)
)

func init() {
	template.MustRegister(TemplateDirect, directTemplate)
	template.MustRegister(TemplateFormat, formatTemplate)
	template.MustRegister(TemplateSteps, stepsTemplate)
	template.MustRegister(TemplateComparative, comparativeTemplate)
}

// Direct performs direct task specification: the task text is the prompt
func Direct(ctx context.Context, b backend.Backend, task string) (string, error) {
	return invoke(ctx, b, directTemplate, map[string]any{"task": task})
}

// WithFormat performs format specification: the task plus an explicit
// description of the expected output shape
func WithFormat(ctx context.Context, b backend.Backend, task, format string) (string, error) {
	return invoke(ctx, b, formatTemplate, map[string]any{
		"task":   task,
		"format": format,
	})
}

// StepByStep performs multi-step reasoning over a problem statement
func StepByStep(ctx context.Context, b backend.Backend, problem string) (string, error) {
	return invoke(ctx, b, stepsTemplate, map[string]any{"problem": problem})
}

// Comparative performs comparative analysis of two subjects against the
// given criteria
func Comparative(ctx context.Context, b backend.Backend, subjectA, subjectB, criteria string) (string, error) {
	return invoke(ctx, b, comparativeTemplate, map[string]any{
		"subject_a": subjectA,
		"subject_b": subjectB,
		"criteria":  criteria,
	})
}

func invoke(ctx context.Context, b backend.Backend, tmpl template.Template, values map[string]any) (string, error) {
	c, err := chain.New(tmpl, b)
	if err != nil {
		return "", err
	}

	response, err := c.Invoke(ctx, values)
	if err != nil {
		return "", fmt.Errorf("zero-shot invocation failed: %w", err)
	}

	return response, nil
}

// Variants returns a comparison set of the single-input method templates,
// in a fixed order, for side-by-side runs over one task. The format variant
// carries a default format so it needs only the task.
func Variants() *compare.Set {
	set := compare.NewSet()

	mustAdd(set, "direct", directTemplate)
	mustAdd(set, "formatted", formatTemplate.WithPartialVariables(map[string]any{
		"format": "a short bulleted list",
	}))
	mustAdd(set, "step_by_step", stepsTemplate)

	return set
}

// Variant returns the named method variant as a single-entry set, for
// running one method through the comparison pipeline.
func Variant(name string) (*compare.Set, error) {
	full := Variants()

	tmpl, ok := full.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown method variant %q (known: %v)", name, full.Names())
	}

	set := compare.NewSet()
	mustAdd(set, name, tmpl)
	return set, nil
}

// mustAdd panics on a failed Add. The built-in variant names are fixed
// non-empty strings added once each, so a failure is a programming error.
func mustAdd(set *compare.Set, name string, tmpl template.Template) {
	if err := set.Add(name, tmpl); err != nil {
		panic(fmt.Sprintf("failed to add method variant %s: %v", name, err))
	}
}
