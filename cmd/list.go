package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/zeroshot/pkg/template"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, desc := range template.DefaultRegistry.Describe() {
			if len(desc.InputVariables) == 0 {
				fmt.Println(desc.Name)
				continue
			}
			fmt.Printf("%s (%s)\n", desc.Name, strings.Join(desc.InputVariables, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
