package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost:5432/bookstand")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RABBITMQ_URL", "amqp://localhost:5672")

	cfg, err := Load()

	assert := require.New(t)
	assert.NoError(err)
	assert.Equal("test-secret", cfg.Secret)
	assert.Equal(8080, cfg.Port)
	assert.False(cfg.IsTestMode)
	assert.False(cfg.ChangePasswordVerifyCurrent)
	assert.Equal(15*time.Minute, cfg.ResetTokenValidDuration)
	assert.Equal(5*time.Minute, cfg.BookCacheTTL)
	assert.Equal("credential.events", cfg.CredentialEventsExchange)
	assert.Equal("password-changed", cfg.PasswordChangedEmailTemplate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost:5432/bookstand")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RABBITMQ_URL", "amqp://localhost:5672")
	t.Setenv("PORT", "9000")
	t.Setenv("RESET_TOKEN_VALID_DURATION", "30m")
	t.Setenv("CHANGE_PASSWORD_VERIFY_CURRENT", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()

	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(9000, cfg.Port)
	assert.Equal(30*time.Minute, cfg.ResetTokenValidDuration)
	assert.True(cfg.ChangePasswordVerifyCurrent)
	assert.Equal([]string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET", "")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost:5432/bookstand")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RABBITMQ_URL", "amqp://localhost:5672")

	_, err := Load()

	require.Error(t, err)
}
