package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scraper:
  api_key: test-key
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "test-key", cfg.Scraper.APIKey)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scraper:
  api_key: test-key
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.scraperapi.com", cfg.Scraper.Endpoint)
				assert.Equal(t, 25*time.Second, cfg.Scraper.Timeout)
				assert.InDelta(t, 2.0, cfg.Scraper.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 5, cfg.Scraper.RateLimit.Burst)
				assert.Equal(t, int64(1000), cfg.Scraper.RateLimit.DailyLimit)
				assert.Equal(t, 24*time.Hour, cfg.Evaluation.Interval)
				assert.Equal(t, 4, cfg.Evaluation.Concurrency)
				assert.Equal(t, 30*time.Second, cfg.Evaluation.ItemTimeout)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
scraper:
  api_key: "${TEST_SCRAPER_KEY}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_SCRAPER_KEY": "sk-abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "sk-abc", cfg.Scraper.APIKey)
			},
		},
		{
			name: "missing database host",
			yaml: `
database:
  name: testdb
  user: testuser
scraper:
  api_key: test-key
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing scraper api key",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			wantErr: "scraper.api_key is required",
		},
		{
			name: "email enabled without smtp host",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scraper:
  api_key: test-key
notifications:
  email:
    enabled: true
    sender: alerts@example.com
`,
			wantErr: "notifications.email.smtp_host is required",
		},
		{
			name: "telegram enabled without bot token",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scraper:
  api_key: test-key
notifications:
  telegram:
    enabled: true
`,
			wantErr: "notifications.telegram.bot_token is required",
		},
		{
			name:    "invalid yaml",
			yaml:    "database: [not a map",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "cloudtrack",
		User:     "app",
		Password: "pw",
		SSLMode:  "require",
	}
	assert.Equal(
		t,
		"host=db.internal port=5433 dbname=cloudtrack user=app password=pw sslmode=require",
		d.DSN(),
	)
}
