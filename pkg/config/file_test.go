package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Server)
	require.NotNil(t, cfg.Database)
	require.NotNil(t, cfg.Site)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Site.FetchTimeout)
	assert.NoError(t, cfg.ValidateConfig())
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_config.yaml")

	original := &Config{
		Server: &ServerConfig{Port: 9001, Address: "127.0.0.1", AdminToken: "secret"},
		Database: &DatabaseConfig{
			Driver: "mysql",
			DSN:    "user:pass@tcp(localhost:3306)/site",
		},
		Site: &SiteConfig{
			SettingsURL:     "https://api.example.com/api/settings",
			FetchTimeout:    3,
			WidgetAllowList: []string{"/", "/services"},
		},
		App: &AppConfig{LogLevel: "debug", LogFile: "/tmp/test.log"},
	}

	require.NoError(t, SaveConfig(original, tempFile))

	loaded, err := LoadConfig(tempFile)
	require.NoError(t, err)

	assert.Equal(t, 9001, loaded.Server.Port)
	assert.Equal(t, "mysql", loaded.Database.Driver)
	assert.Equal(t, original.Site.SettingsURL, loaded.Site.SettingsURL)
	assert.Equal(t, []string{"/", "/services"}, loaded.Site.WidgetAllowList)
	assert.Equal(t, "debug", loaded.App.LogLevel)
	require.NotNil(t, loaded.RateLimit, "missing sections are filled with defaults")
	require.NotNil(t, loaded.Retention)
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"port":7000,"address":"0.0.0.0"}}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfigInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = 1"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestConfigWithEnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\nsite:\n  fetch_timeout: 5\n"), 0o644))

	t.Setenv("SERVER_PORT", "9002")
	t.Setenv("SETTINGS_URL", "http://localhost:9000/api/settings")
	t.Setenv("WIDGET_ALLOW_LIST", "/, /about ,/services")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9002, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9000/api/settings", cfg.Site.SettingsURL)
	assert.Equal(t, []string{"/", "/about", "/services"}, cfg.Site.WidgetAllowList)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = "postgres"
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrDatabaseConfig)

	cfg = Default()
	cfg.Site.SettingsURL = "ftp://example.com"
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrSiteConfig)

	cfg = Default()
	cfg.Site.WidgetAllowList = []string{"about"}
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrSiteConfig)

	cfg = Default()
	cfg.Retention.Enabled = true
	cfg.Retention.Cron = "every day"
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrRetentionConfig)

	cfg = Default()
	cfg.Server.Port = 0
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrServerConfig)
}

func TestNotifyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "notify:\n  telegram:\n    enabled: false\n  webhook:\n    url: https://hooks.example.com/send\n    max_retries: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("TELEGRAM_ENABLED", "true")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Notify.Telegram)
	assert.True(t, cfg.Notify.Telegram.Enabled)
	assert.Equal(t, "123:abc", cfg.Notify.Telegram.BotToken)
	assert.Equal(t, "https://hooks.example.com/send", cfg.Notify.Webhook.URL)
	assert.Equal(t, 1, cfg.Notify.Webhook.MaxRetries)
	assert.NoError(t, cfg.ValidateConfig())

	cfg.Notify.Telegram.ChatID = ""
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrNotifyConfig)

	cfg = Default()
	cfg.Notify.Webhook.URL = "not a url"
	assert.ErrorIs(t, cfg.ValidateConfig(), ErrNotifyConfig)
}
