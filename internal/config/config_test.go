package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "DB_PATH", "WORD_LENGTH", "MAX_GUESSES",
		"JWT_SECRET", "JWT_EXPIRES_DAYS", "COOKIE_NAME", "CLIENT_ORIGIN", "NODE_ENV", "DAILY_SALT", "SESSION_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data/wordle.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.Equal(t, "wordle_token", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Production)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_GUESSES", "8")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6, cfg.WordLength)
	assert.Equal(t, 8, cfg.MaxGuesses)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct{ key, val string }{
		{"WORD_LENGTH", "five"},
		{"WORD_LENGTH", "1"},
		{"MAX_GUESSES", "0"},
		{"PORT", "http"},
		{"LOG_LEVEL", "loud"},
		{"CLIENT_ORIGIN", "not a url"},
		{"SESSION_TTL", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestProductionNeedsSecret(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production)
}
