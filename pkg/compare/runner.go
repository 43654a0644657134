package compare

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/killallgit/zeroshot/pkg/backend"
	"github.com/killallgit/zeroshot/pkg/chain"
	"github.com/killallgit/zeroshot/pkg/logger"
	"github.com/killallgit/zeroshot/pkg/template"
)

// Result holds one variant's output. Err is set when that variant's
// invocation failed; Output is then empty.
type Result struct {
	Name   string
	Output string
	Err    error
}

// Runner invokes every variant of a set against a shared backend,
// sequentially and in insertion order, with exactly one backend call per
// variant.
//
// By default a failing variant is recorded in its Result and the run
// continues, so partial results survive a flaky provider. WithFailFast
// switches to aborting on the first failure.
type Runner struct {
	backend  backend.Backend
	failFast bool
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithFailFast makes Run abort on the first variant failure, returning the
// error together with the results gathered so far.
func WithFailFast() RunnerOption {
	return func(r *Runner) {
		r.failFast = true
	}
}

// NewRunner creates a runner over the given backend
func NewRunner(b backend.Backend, opts ...RunnerOption) *Runner {
	r := &Runner{backend: b}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run invokes every variant with the same values mapping and returns one
// Result per variant, ordered as the set was defined.
func (r *Runner) Run(ctx context.Context, values map[string]any, set *Set) ([]Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("comparison set is empty")
	}

	runID := uuid.NewString()
	logger.Debug("Comparison run %s started with %d variants", runID, set.Len())

	results := make([]Result, 0, set.Len())

	for _, name := range set.Names() {
		tmpl, _ := set.Get(name)

		output, err := r.invokeVariant(ctx, tmpl, values)
		if err != nil {
			logger.Warn("Comparison run %s: variant %s failed: %v", runID, name, err)
			if r.failFast {
				return results, fmt.Errorf("variant %s: %w", name, err)
			}
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		results = append(results, Result{Name: name, Output: output})
	}

	logger.Debug("Comparison run %s finished with %d results", runID, len(results))
	return results, nil
}

// RunTask invokes every variant with the shared task string. A variant with
// exactly one input variable gets the task bound to that variable, whatever
// it is named; variants with more inputs receive it under the conventional
// "task" key.
func (r *Runner) RunTask(ctx context.Context, task string, set *Set) ([]Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("comparison set is empty")
	}

	runID := uuid.NewString()
	logger.Debug("Comparison run %s started for task (%d chars, %d variants)", runID, len(task), set.Len())

	results := make([]Result, 0, set.Len())

	for _, name := range set.Names() {
		tmpl, _ := set.Get(name)

		values := map[string]any{"task": task}
		if vars := tmpl.GetInputVariables(); len(vars) == 1 {
			values = map[string]any{vars[0]: task}
		}

		output, err := r.invokeVariant(ctx, tmpl, values)
		if err != nil {
			logger.Warn("Comparison run %s: variant %s failed: %v", runID, name, err)
			if r.failFast {
				return results, fmt.Errorf("variant %s: %w", name, err)
			}
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		results = append(results, Result{Name: name, Output: output})
	}

	return results, nil
}

func (r *Runner) invokeVariant(ctx context.Context, tmpl template.Template, values map[string]any) (string, error) {
	c, err := chain.New(tmpl, r.backend)
	if err != nil {
		return "", err
	}

	return c.Invoke(ctx, values)
}
