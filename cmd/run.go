package cmd

import (
	"fmt"

	"github.com/killallgit/zeroshot/pkg/backend"
	"github.com/killallgit/zeroshot/pkg/config"
	"github.com/killallgit/zeroshot/pkg/methods"
	"github.com/killallgit/zeroshot/pkg/render"
	"github.com/spf13/cobra"
)

var (
	runMethod string
	runFormat string
)

var runCmd = &cobra.Command{
	Use:   "run [task]",
	Short: "Run one zero-shot method on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := args[0]

		b, err := backend.FromConfig(config.Get())
		if err != nil {
			return err
		}

		var output string
		switch runMethod {
		case "direct":
			output, err = methods.Direct(cmd.Context(), b, task)
		case "format":
			output, err = methods.WithFormat(cmd.Context(), b, task, runFormat)
		case "steps":
			output, err = methods.StepByStep(cmd.Context(), b, task)
		default:
			return fmt.Errorf("unknown method %q (known: direct, format, steps)", runMethod)
		}
		if err != nil {
			return err
		}

		fmt.Println(render.Single(runMethod, output))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runMethod, "method", "direct", "zero-shot method: direct, format, steps")
	runCmd.Flags().StringVar(&runFormat, "format", "a short bulleted list", "expected output format (method=format)")

	rootCmd.AddCommand(runCmd)
}
