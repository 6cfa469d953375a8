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
shop:
  catalog_url: https://shop.example.com/api/catalog/products
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "https://shop.example.com/api/catalog/products", cfg.Shop.CatalogURL)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
shop:
  catalog_url: https://shop.example.com/api/catalog/products
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
				assert.Equal(t, 250, cfg.Shop.PageLimit)
				assert.Equal(t, 30*time.Second, cfg.Shop.RequestTimeout)
				assert.Equal(t, 2.0, cfg.Shop.RateLimit.PerSecond)
				assert.Equal(t, 5, cfg.Shop.RateLimit.Burst)
				assert.Equal(t, int64(2000), cfg.Shop.RateLimit.DailyLimit)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.ReconcileInterval)
				assert.Equal(t, 15*time.Second, cfg.Notifications.SendTimeout)
				assert.Equal(t, 587, cfg.Notifications.Email.Port)
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
shop:
  catalog_url: https://shop.example.com/api/catalog/products
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
shop:
  catalog_url: https://shop.example.com/api/catalog/products
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required shop.catalog_url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			wantErr: "shop.catalog_url is required",
		},
		{
			name: "email enabled requires host and from",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
shop:
  catalog_url: https://shop.example.com/api/catalog/products
notifications:
  email:
    enabled: true
`,
			wantErr: "notifications.email.host is required when email is enabled",
		},
		{
			name: "telegram enabled requires bot token",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
shop:
  catalog_url: https://shop.example.com/api/catalog/products
notifications:
  telegram:
    enabled: true
`,
			wantErr: "notifications.telegram.bot_token is required when telegram is enabled",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: restock_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
shop:
  catalog_url: https://shop.example.com/api/catalog/products
  storefront_url: https://shop.example.com/en/product/
  category: tea
  substore: main
  page_limit: 500
  rate_limit:
    per_second: 1.0
    burst: 2
    daily_limit: 1000
schedule:
  reconcile_interval: 10m
notifications:
  send_timeout: 20s
  email:
    enabled: true
    host: smtp.example.com
    port: 465
    username: alerts
    password: hunter2
    from: alerts@example.com
  telegram:
    enabled: true
    bot_token: 12345:token
    webhook_secret: hook-secret
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "tea", cfg.Shop.Category)
				assert.Equal(t, "main", cfg.Shop.Substore)
				assert.Equal(t, 500, cfg.Shop.PageLimit)
				assert.Equal(t, 1.0, cfg.Shop.RateLimit.PerSecond)
				assert.Equal(t, int64(1000), cfg.Shop.RateLimit.DailyLimit)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.ReconcileInterval)
				assert.Equal(t, 20*time.Second, cfg.Notifications.SendTimeout)
				assert.True(t, cfg.Notifications.Email.Enabled)
				assert.Equal(t, "smtp.example.com", cfg.Notifications.Email.Host)
				assert.Equal(t, 465, cfg.Notifications.Email.Port)
				assert.Equal(t, "alerts@example.com", cfg.Notifications.Email.From)
				assert.True(t, cfg.Notifications.Telegram.Enabled)
				assert.Equal(t, "12345:token", cfg.Notifications.Telegram.BotToken)
				assert.Equal(t, "hook-secret", cfg.Notifications.Telegram.WebhookSecret)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			// Set env vars for this test.
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Write YAML to a temp file.
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "restock",
		User:     "restock",
		Password: "secret",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 dbname=restock user=restock password=secret sslmode=disable",
		cfg.DSN(),
	)
}
