// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Secrets (scraper API
// key, Telegram bot token, SMTP credentials) come in through ${VAR}
// expansion and are read exactly once per process; nothing in the codebase
// caches them globally.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Scraper       ScraperConfig       `yaml:"scraper"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Evaluation    EvaluationConfig    `yaml:"evaluation"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ScraperConfig defines the scraping API settings.
type ScraperConfig struct {
	Endpoint  string          `yaml:"endpoint"`
	APIKey    string          `yaml:"api_key"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines scraping API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// NotificationsConfig defines notification channel settings.
type NotificationsConfig struct {
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// EmailConfig defines SMTP delivery settings for the email channel.
type EmailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
}

// TelegramConfig defines Telegram bot settings for the chat channel.
type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
}

// EvaluationConfig defines how catalog evaluation runs are scheduled and
// bounded.
type EvaluationConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Concurrency int           `yaml:"concurrency"`
	ItemTimeout time.Duration `yaml:"item_timeout"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScraperDefaults(&cfg.Scraper)
	applyEvaluationDefaults(&cfg.Evaluation)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScraperDefaults(s *ScraperConfig) {
	if s.Endpoint == "" {
		s.Endpoint = "https://api.scraperapi.com"
	}
	if s.Timeout == 0 {
		s.Timeout = 25 * time.Second
	}
	applyRateLimitDefaults(&s.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 1000
	}
}

func applyEvaluationDefaults(e *EvaluationConfig) {
	if e.Interval == 0 {
		e.Interval = 24 * time.Hour
	}
	if e.Concurrency == 0 {
		e.Concurrency = 4
	}
	if e.ItemTimeout == 0 {
		e.ItemTimeout = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Scraper.APIKey == "" {
		errs = append(errs, fmt.Errorf("scraper.api_key is required"))
	}

	if cfg.Notifications.Email.Enabled {
		if cfg.Notifications.Email.SMTPHost == "" {
			errs = append(
				errs,
				fmt.Errorf("notifications.email.smtp_host is required when email is enabled"),
			)
		}
		if cfg.Notifications.Email.Sender == "" {
			errs = append(
				errs,
				fmt.Errorf("notifications.email.sender is required when email is enabled"),
			)
		}
	}

	if cfg.Notifications.Telegram.Enabled && cfg.Notifications.Telegram.BotToken == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.telegram.bot_token is required when telegram is enabled"),
		)
	}

	return errors.Join(errs...)
}
