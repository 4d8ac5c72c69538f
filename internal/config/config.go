package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       int    `env:"PORT" envDefault:"8080"`
	Secret     string `env:"SECRET,required,notEmpty"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required,notEmpty"`
	RedisURL      string `env:"REDIS_URL,required,notEmpty"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required,notEmpty"`

	CredentialEventsExchange string `env:"CREDENTIAL_EVENTS_EXCHANGE" envDefault:"credential.events"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	ResetTokenValidDuration     time.Duration `env:"RESET_TOKEN_VALID_DURATION" envDefault:"15m"`
	ChangePasswordVerifyCurrent bool          `env:"CHANGE_PASSWORD_VERIFY_CURRENT" envDefault:"false"`

	BookCacheTTL time.Duration `env:"BOOK_CACHE_TTL" envDefault:"5m"`

	AwsRegion                    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKeyID               string `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey           string `env:"AWS_SECRET_ACCESS_KEY"`
	EmailSender                  string `env:"EMAIL_SENDER"`
	PasswordChangedEmailTemplate string `env:"PASSWORD_CHANGED_EMAIL_TEMPLATE" envDefault:"password-changed"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return cfg, nil
}
