package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep a bare environment usable out of the box.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("store.path", "factum.db")
	v.SetDefault("auth.fallback_language", "en")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_history_turns", 8)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.max_output_tokens", 220)

	// An on-disk config file is optional. Environment variables still
	// override anything it sets.
	v.SetConfigName("factum")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// FACTUM_SERVER_PORT, FACTUM_AUTH_PROVIDER_URL, and so on.
	v.SetEnvPrefix("FACTUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Keys arrive as a single comma-separated variable; normalize them
	// here so the rest of the app only ever sees a clean slice.
	cfg.LLM.GeminiAPIKeys = splitAndTrim(strings.Join(cfg.LLM.GeminiAPIKeys, ","))

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// bindEnvKeys registers every known key with viper so AutomaticEnv can
// populate nested struct fields that have no value from file or default.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"server.port",
		"server.log_level",
		"store.path",
		"auth.provider_url",
		"auth.anon_key",
		"auth.fallback_language",
		"llm.gemini_api_keys",
		"llm.model_name",
		"llm.max_history_turns",
		"llm.temperature",
		"llm.top_p",
		"llm.max_output_tokens",
	}
	for _, key := range keys {
		// BindEnv only errors on an empty key name.
		_ = v.BindEnv(key)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
