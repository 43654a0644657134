package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/zeroshot/pkg/config"
	"github.com/killallgit/zeroshot/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "zeroshot",
	Short: "Zero-shot prompting against hosted LLM backends",
	Long: `zeroshot builds reusable prompt chains from templates and runs them
against a configured text-generation backend. It ships the common zero-shot
methods (direct, format specification, step-by-step reasoning, comparative
analysis) and can run them side by side on one task.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .zeroshot/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("provider", "", "backend provider (ollama, openai)")
	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))

	rootCmd.PersistentFlags().StringP("model", "m", "", "model identifier override")
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()

	// Model flag overrides whichever provider is selected
	if model, _ := rootCmd.PersistentFlags().GetString("model"); model != "" {
		cfg.Ollama.Model = model
		cfg.OpenAI.Model = model
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.Persist); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}
