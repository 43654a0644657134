package cmd

import (
	"fmt"

	"github.com/killallgit/zeroshot/pkg/backend"
	"github.com/killallgit/zeroshot/pkg/compare"
	"github.com/killallgit/zeroshot/pkg/config"
	"github.com/killallgit/zeroshot/pkg/methods"
	"github.com/killallgit/zeroshot/pkg/render"
	"github.com/spf13/cobra"
)

var (
	compareMethods  []string
	compareFailFast bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [task]",
	Short: "Run zero-shot method variants side by side on one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := args[0]

		b, err := backend.FromConfig(config.Get())
		if err != nil {
			return err
		}

		set := methods.Variants()
		if len(compareMethods) > 0 {
			filtered := compare.NewSet()
			for _, name := range compareMethods {
				tmpl, ok := set.Get(name)
				if !ok {
					return fmt.Errorf("unknown method variant %q (known: %v)", name, set.Names())
				}
				if err := filtered.Add(name, tmpl); err != nil {
					return err
				}
			}
			set = filtered
		}

		var opts []compare.RunnerOption
		if compareFailFast {
			opts = append(opts, compare.WithFailFast())
		}

		runner := compare.NewRunner(b, opts...)
		results, err := runner.RunTask(cmd.Context(), task, set)
		if err != nil {
			return err
		}

		fmt.Println(render.Comparison(results))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringSliceVar(&compareMethods, "methods", nil, "subset of method variants to compare")
	compareCmd.Flags().BoolVar(&compareFailFast, "fail-fast", false, "abort the comparison on the first variant failure")

	rootCmd.AddCommand(compareCmd)
}
