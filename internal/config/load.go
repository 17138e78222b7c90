package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "LESSONPLAN"

// DefaultSystemPrompt is the fixed system turn sent with every prompt.
const DefaultSystemPrompt = "You are a helpful assistant for generating lesson plans."

// Load reads configuration from environment variables and the optional
// lesson-plan-api.yaml in the working directory.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from the given file, falling back to the
// default search path when path is empty. Environment variables take
// precedence over values from the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lesson-plan-api")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The provider SDKs document these names, so honour them as fallbacks.
	bindings := map[string]string{
		"llm.openai_api_key":    "OPENAI_API_KEY",
		"llm.gemini_api_key":    "GEMINI_API_KEY",
		"llm.anthropic_api_key": "ANTHROPIC_API_KEY",
	}
	for key, fallback := range bindings {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, fallback); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.system_prompt", DefaultSystemPrompt)
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.timeout_seconds", 0)

	v.SetDefault("export.font_family", "Helvetica")
	v.SetDefault("export.font_size", 12.0)
	v.SetDefault("export.margin", 40.0)
	v.SetDefault("export.paginate", false)
	v.SetDefault("export.compress", true)
}
