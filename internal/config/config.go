// internal/config/config.go
//
// Process configuration read from the environment (after godotenv has loaded
// .env). Every value has a development default; Load validates the result.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const devSecret = "dev_secret_change_me"

// Config holds every tunable of the CLI and HTTP server.
type Config struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	DBPath   string `validate:"required"`

	AnswersFile string
	AllowedFile string
	WordLength  int `validate:"min=2,max=15"`
	MaxGuesses  int `validate:"min=1,max=20"`

	JWTSecret      string `validate:"required"`
	JWTExpiresDays int    `validate:"min=1,max=365"`
	CookieName     string `validate:"required"`
	ClientOrigin   string `validate:"required,url"`
	Production     bool

	DailySalt  string        `validate:"required"`
	SessionTTL time.Duration `validate:"min=0"`
}

// Load reads the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBPath:         getEnv("DB_PATH", "./data/wordle.db"),
		AnswersFile:    os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:    os.Getenv("WORDS_ALLOWED_FILE"),
		JWTSecret:      getEnv("JWT_SECRET", devSecret),
		CookieName:     getEnv("COOKIE_NAME", "wordle_token"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:     os.Getenv("NODE_ENV") == "production",
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		WordLength:     5,
		MaxGuesses:     6,
		JWTExpiresDays: 14,
		SessionTTL:     24 * time.Hour,
	}

	var err error
	if cfg.WordLength, err = getEnvInt("WORD_LENGTH", cfg.WordLength); err != nil {
		return cfg, err
	}
	if cfg.MaxGuesses, err = getEnvInt("MAX_GUESSES", cfg.MaxGuesses); err != nil {
		return cfg, err
	}
	if cfg.JWTExpiresDays, err = getEnvInt("JWT_EXPIRES_DAYS", cfg.JWTExpiresDays); err != nil {
		return cfg, err
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if cfg.SessionTTL, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("SESSION_TTL: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks the struct tags; flags that override fields call it again.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Production && c.JWTSecret == devSecret {
		return fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
