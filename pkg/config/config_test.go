package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	global = nil
}

func TestInit(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		resetConfig(t)

		cfgFile := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, Init(cfgFile))

		cfg := Get()
		assert.Equal(t, "ollama", cfg.Provider)
		assert.Equal(t, "http://localhost:11434", cfg.Ollama.URL)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("config file values override defaults", func(t *testing.T) {
		resetConfig(t)

		cfgFile := filepath.Join(t.TempDir(), "settings.yaml")
		content := `provider: openai
openai:
  model: gpt-4o
logging:
  level: debug
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))
		require.NoError(t, Init(cfgFile))

		cfg := Get()
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// Untouched sections keep their defaults
		assert.Equal(t, "qwen3:latest", cfg.Ollama.Model)
	})

	t.Run("credentials come from the environment", func(t *testing.T) {
		resetConfig(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cfgFile := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, Init(cfgFile))

		assert.Equal(t, "sk-test", Get().OpenAI.APIKey)
	})

	t.Run("Get panics before Init", func(t *testing.T) {
		resetConfig(t)
		assert.False(t, Loaded())
		assert.Panics(t, func() { Get() })
	})
}
