package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the variables without which validation fails.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FACTUM_AUTH_PROVIDER_URL", "https://auth.example.com")
	t.Setenv("FACTUM_AUTH_ANON_KEY", "public-anon-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "factum.db", cfg.Store.Path)
	assert.Equal(t, "https://auth.example.com", cfg.Auth.ProviderURL)
	assert.Equal(t, "en", cfg.Auth.FallbackLanguage)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 8, cfg.LLM.MaxHistoryTurns)
	assert.Equal(t, int32(220), cfg.LLM.MaxOutputTokens)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FACTUM_SERVER_PORT", "9090")
	t.Setenv("FACTUM_SERVER_LOG_LEVEL", "debug")
	t.Setenv("FACTUM_STORE_PATH", "/tmp/wellness.db")
	t.Setenv("FACTUM_AUTH_FALLBACK_LANGUAGE", "rus")
	t.Setenv("FACTUM_LLM_MODEL_NAME", "gemini-2.0-pro")
	t.Setenv("FACTUM_LLM_MAX_HISTORY_TURNS", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/wellness.db", cfg.Store.Path)
	assert.Equal(t, "rus", cfg.Auth.FallbackLanguage)
	assert.Equal(t, "gemini-2.0-pro", cfg.LLM.ModelName)
	assert.Equal(t, 12, cfg.LLM.MaxHistoryTurns)
}

func TestLoadSplitsAPIKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FACTUM_LLM_GEMINI_API_KEYS", "key-one, key-two, key-three")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.LLM.GeminiAPIKeys)
	assert.True(t, cfg.LLM.Enabled())
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing provider url", func(t *testing.T) {
		t.Setenv("FACTUM_AUTH_ANON_KEY", "public-anon-key")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("port out of range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FACTUM_SERVER_PORT", "70000")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FACTUM_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad fallback language", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FACTUM_AUTH_FALLBACK_LANGUAGE", "fr")

		_, err := Load()
		require.Error(t, err)
	})
}
