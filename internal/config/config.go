package config

// Supported values for LLMConfig.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the settings of the remote text-generation service.
// Only the API key of the selected provider is required.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini anthropic"`

	// ModelName falls back to the provider default when empty.
	ModelName string `mapstructure:"model_name"`

	OpenAIAPIKey    string `mapstructure:"openai_api_key"    validate:"required_if=Provider openai"`
	OpenAIBaseURL   string `mapstructure:"openai_base_url"   validate:"omitempty,url"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"    validate:"required_if=Provider gemini"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key" validate:"required_if=Provider anthropic"`

	MaxTokens   int     `mapstructure:"max_tokens"  validate:"gt=0"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	SystemPrompt string `mapstructure:"system_prompt" validate:"required"`

	// PromptTemplatePath optionally replaces the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`

	// TimeoutSeconds bounds a single upstream call. Zero keeps the transport default.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// ExportConfig controls how lesson plans are drawn onto the PDF canvas.
type ExportConfig struct {
	FontFamily string  `mapstructure:"font_family" validate:"required,oneof=Helvetica Courier Times Arial"`
	FontSize   float64 `mapstructure:"font_size"   validate:"gt=0"`
	Margin     float64 `mapstructure:"margin"      validate:"gte=0"`
	Paginate   bool    `mapstructure:"paginate"`
	Compress   bool    `mapstructure:"compress"`
}
