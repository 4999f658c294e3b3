// Package config loads the application configuration from environment
// variables. Every value has a development-friendly default so the server
// starts with no environment at all.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DBPath is the sqlite database file location. The parent directory is
	// created on startup when missing.
	DBPath string `env:"DB_PATH"`

	// SecretKey signs the session JWTs. Must be overridden in production.
	SecretKey string `env:"SECRET_KEY" envDefault:"change_me_in_production"`

	// CookieSecure marks the session cookie Secure; enable behind TLS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	// TOTPIssuer is the issuer label shown in authenticator apps.
	TOTPIssuer string `env:"TOTP_ISSUER" envDefault:"IronLog"`

	Mailgun Mailgun `envPrefix:"MAILGUN_"`
}

// Mailgun configures the outbound mail client used for weekly reports.
// Sending stays disabled until both APIKey and Domain are set.
type Mailgun struct {
	APIKey      string `env:"API_KEY"`
	Domain      string `env:"DOMAIN"`
	FromAddress string `env:"FROM"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://api.mailgun.net/v3"`
}

func (mailgun Mailgun) Enabled() bool {
	return mailgun.APIKey != "" && mailgun.Domain != ""
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "ironlog.db")
	}
	return cfg, nil
}
