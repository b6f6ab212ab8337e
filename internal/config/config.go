package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// FallbackLocale is used for request locales with no table. Empty means
	// unknown locales are rejected.
	FallbackLocale  string `env:"SKILL_FALLBACK_LOCALE"`
	TranslationsDir string `env:"SKILL_TRANSLATIONS_DIR"`

	// Interaction journal; disabled when DatabaseURL is empty.
	DatabaseURL   string `env:"DATABASE_URL"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"8s"`

	// NATS transport; disabled when CommsURL is empty.
	CommsURL     string `env:"COMMS_URL"`
	CommsSubject string `env:"COMMS_SUBJECT" envDefault:"skill.requests"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"voiceskill"`

	// Discord front end.
	Token   string `env:"TOKEN"`
	GuildID string `env:"GUILD_ID"`
}

// Load reads the optional .env file, then the environment, and validates the result.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Lambda, Docker, CI).
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applies the rules shared by every binary.
func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}
	if c.RunMigrations && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: RUN_MIGRATIONS requires DATABASE_URL")
	}
	return nil
}

// ValidateForServer checks what cmd/server needs.
func (c *Config) ValidateForServer() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}
	if c.CommsURL != "" && strings.TrimSpace(c.CommsSubject) == "" {
		return fmt.Errorf("config: COMMS_SUBJECT is required when COMMS_URL is set")
	}
	return nil
}

// ValidateForBot checks what cmd/bot needs.
func (c *Config) ValidateForBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

// JournalEnabled reports whether interactions should be persisted.
func (c *Config) JournalEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}
