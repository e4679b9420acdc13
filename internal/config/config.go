package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains the local HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig contains the on-device document store settings.
type StoreConfig struct {
	// Path is the bbolt database file holding every persisted document.
	Path string `mapstructure:"path" validate:"required"`
}

// AuthConfig contains the remote identity provider settings.
type AuthConfig struct {
	// ProviderURL is the base URL of the GoTrue-style identity provider.
	ProviderURL string `mapstructure:"provider_url" validate:"required,url"`

	// AnonKey is the provider's publishable API key sent with every request.
	AnonKey string `mapstructure:"anon_key" validate:"required"`

	// FallbackLanguage localizes default settings for brand-new users.
	FallbackLanguage string `mapstructure:"fallback_language" validate:"required,oneof=en rus"`
}

// LLMConfig contains the remote conversational AI settings. The whole
// group is optional: with no API keys configured the chat degrades to
// the local fallback phrase bank.
type LLMConfig struct {
	// GeminiAPIKeys are tried in order until one of them succeeds.
	GeminiAPIKeys []string `mapstructure:"gemini_api_keys"`

	ModelName       string  `mapstructure:"model_name"`
	MaxHistoryTurns int     `mapstructure:"max_history_turns" validate:"omitempty,gt=0"`
	Temperature     float32 `mapstructure:"temperature"       validate:"omitempty,gte=0,lte=2"`
	TopP            float32 `mapstructure:"top_p"             validate:"omitempty,gte=0,lte=1"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"omitempty,gt=0"`
}

// Enabled reports whether a remote responder can be constructed at all.
func (c LLMConfig) Enabled() bool {
	return len(c.GeminiAPIKeys) > 0
}
