package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/config"
)

func TestExtractorConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	cfg := config.ExtractorConfig{
		Provider:     "claude",
		APIKey:       "sk-legacy",
		DefaultModel: "claude-sonnet-4-20250514",
		MaxRetries:   3,
		TimeoutSecs:  30,
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-legacy", primary.APIKey)
	assert.Equal(t, "claude-sonnet-4-20250514", primary.DefaultModel)
	assert.Equal(t, 3, primary.MaxRetries)
	assert.Equal(t, 30, primary.TimeoutSecs)
}

func TestExtractorConfig_PrimaryConfig_ExplicitPrimary(t *testing.T) {
	cfg := config.ExtractorConfig{
		Provider: "legacy-should-be-ignored",
		Primary: config.ProviderConfig{
			Provider: "remote",
			Endpoint: "http://ocr.internal:9000",
		},
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "remote", primary.Provider)
	assert.Equal(t, "http://ocr.internal:9000", primary.Endpoint)
}

func TestExtractorConfig_SecondaryAndTertiary(t *testing.T) {
	cfg := config.ExtractorConfig{
		Primary:  config.ProviderConfig{Provider: "claude"},
		Tertiary: config.ProviderConfig{Provider: "openai", DefaultModel: "gpt-4o"},
	}

	assert.Nil(t, cfg.SecondaryConfig())
	tertiary := cfg.TertiaryConfig()
	require.NotNil(t, tertiary)
	assert.Equal(t, "openai", tertiary.Provider)
	assert.Equal(t, "gpt-4o", tertiary.DefaultModel)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Review.CopyAck)
	assert.Equal(t, 30*time.Minute, cfg.Review.SessionTTL)
	assert.Equal(t, "sqlite", cfg.Profiles.Backend)
	assert.Equal(t, "saved_profiles", cfg.Profiles.KeyPrefix)
	assert.True(t, cfg.Extractor.ValidateSchema)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEXDRAFT_REVIEW_COPY_ACK", "500ms")
	t.Setenv("LEXDRAFT_PROFILES_BACKEND", "memory")
	t.Setenv("LEXDRAFT_EXTRACTOR_SECONDARY_PROVIDER", "gemini")
	t.Setenv("LEXDRAFT_CORS_ALLOWED_ORIGINS", "https://app.example.com, ,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Review.CopyAck)
	assert.Equal(t, "memory", cfg.Profiles.Backend)
	require.NotNil(t, cfg.Extractor.SecondaryConfig())
	assert.Equal(t, "gemini", cfg.Extractor.SecondaryConfig().Provider)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.DSN())
}
