package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration. It is loaded once at
// startup and treated as immutable afterwards; backend credentials flow
// from here into backend constructors, never from ad hoc environment reads.
type Config struct {
	Provider string        `mapstructure:"provider"`
	Ollama   OllamaConfig  `mapstructure:"ollama"`
	OpenAI   OpenAIConfig  `mapstructure:"openai"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// OllamaConfig holds Ollama-specific configuration
type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

// OpenAIConfig holds OpenAI-specific configuration
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // For Azure or custom endpoints
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	LogFile string `mapstructure:"log_file"`
	Persist bool   `mapstructure:"persist"`
}

// Global settings instance
var global *Config

// Init initializes the configuration system. Values resolve in order:
// explicit config file, environment variables, defaults.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".zeroshot")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	setDefaults()

	viper.SetEnvPrefix("ZEROSHOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("ollama.url", "OLLAMA_HOST")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")

	// A missing config file is fine, defaults and env cover it
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	global = cfg
	return nil
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("provider", "ollama")

	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "qwen3:latest")

	viper.SetDefault("openai.model", "gpt-4o-mini")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.log_file", "")
	viper.SetDefault("logging.persist", false)
}

// Get returns the global settings instance
func Get() *Config {
	if global == nil {
		panic("config not initialized - call Init() first")
	}
	return global
}

// Loaded reports whether Init has been called
func Loaded() bool {
	return global != nil
}
