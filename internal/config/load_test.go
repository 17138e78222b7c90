package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// Keys mapped to an empty string are cleared, which viper treats as unset.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// Provider keys from the developer's shell must not leak into tests.
	for _, name := range []string{
		"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
		"LESSONPLAN_LLM_OPENAI_API_KEY", "LESSONPLAN_LLM_GEMINI_API_KEY",
		"LESSONPLAN_LLM_ANTHROPIC_API_KEY", "LESSONPLAN_LLM_PROVIDER",
	} {
		t.Setenv(name, "")
	}

	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the documented defaults when only the API key is set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"OPENAI_API_KEY":              "test-api-key",
		"LESSONPLAN_SERVER_PORT":      "",
		"LESSONPLAN_SERVER_LOG_LEVEL": "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "test-api-key", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, DefaultSystemPrompt, cfg.LLM.SystemPrompt)
	assert.Equal(t, "Helvetica", cfg.Export.FontFamily)
	assert.InDelta(t, 12.0, cfg.Export.FontSize, 1e-9)
	assert.InDelta(t, 40.0, cfg.Export.Margin, 1e-9)
	assert.False(t, cfg.Export.Paginate)
	assert.True(t, cfg.Export.Compress)
}

// TestLoadFromEnv verifies that prefixed environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"LESSONPLAN_SERVER_PORT":         "9090",
		"LESSONPLAN_SERVER_LOG_LEVEL":    "debug",
		"LESSONPLAN_LLM_PROVIDER":        "gemini",
		"LESSONPLAN_LLM_GEMINI_API_KEY":  "gemini-key",
		"LESSONPLAN_LLM_MODEL_NAME":      "gemini-2.0-pro",
		"LESSONPLAN_LLM_MAX_TOKENS":      "800",
		"LESSONPLAN_LLM_TEMPERATURE":     "0.2",
		"LESSONPLAN_LLM_TIMEOUT_SECONDS": "30",
		"LESSONPLAN_EXPORT_PAGINATE":     "true",
		"LESSONPLAN_EXPORT_FONT_SIZE":    "10",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-pro", cfg.LLM.ModelName)
	assert.Equal(t, 800, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.True(t, cfg.Export.Paginate)
	assert.InDelta(t, 10.0, cfg.Export.FontSize, 1e-9)
}

// TestLoadPrefixedKeyWins verifies the prefixed variable beats the SDK fallback name.
func TestLoadPrefixedKeyWins(t *testing.T) {
	setupEnv(t, map[string]string{
		"OPENAI_API_KEY":                "fallback-key",
		"LESSONPLAN_LLM_OPENAI_API_KEY": "prefixed-key",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.LLM.OpenAIAPIKey)
}

// TestLoadFromFile verifies that an explicit config file is read and that
// environment variables still take precedence over it.
func TestLoadFromFile(t *testing.T) {
	setupEnv(t, map[string]string{
		"LESSONPLAN_SERVER_PORT": "7070",
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 6060
  log_level: warn
llm:
  provider: anthropic
  anthropic_api_key: file-key
export:
  margin: 72
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "environment should override the file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "file-key", cfg.LLM.AnthropicAPIKey)
	assert.InDelta(t, 72.0, cfg.Export.Margin, 1e-9)
}

// TestLoadMissingFile verifies that an explicit but absent file is an error.
func TestLoadMissingFile(t *testing.T) {
	setupEnv(t, map[string]string{"OPENAI_API_KEY": "test-api-key"})

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Missing API key for default provider",
			envVars: map[string]string{},
		},
		{
			name: "Missing API key for selected provider",
			envVars: map[string]string{
				"LESSONPLAN_LLM_PROVIDER": "anthropic",
				"OPENAI_API_KEY":          "test-api-key",
			},
		},
		{
			name: "Unknown provider",
			envVars: map[string]string{
				"LESSONPLAN_LLM_PROVIDER": "cohere",
				"OPENAI_API_KEY":          "test-api-key",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"LESSONPLAN_SERVER_PORT": "999999",
				"OPENAI_API_KEY":         "test-api-key",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"LESSONPLAN_SERVER_LOG_LEVEL": "invalid-level",
				"OPENAI_API_KEY":              "test-api-key",
			},
		},
		{
			name: "Non-positive max tokens",
			envVars: map[string]string{
				"LESSONPLAN_LLM_MAX_TOKENS": "0",
				"OPENAI_API_KEY":            "test-api-key",
			},
		},
		{
			name: "Unsupported font",
			envVars: map[string]string{
				"LESSONPLAN_EXPORT_FONT_FAMILY": "Comic Sans",
				"OPENAI_API_KEY":                "test-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
