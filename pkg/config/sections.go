package config

import (
	"fmt"
	"time"
)

// ServerConfig represents HTTP server settings
type ServerConfig struct {
	Port                    int    `json:"port" yaml:"port"`
	Address                 string `json:"address" yaml:"address"`
	AdminToken              string `json:"admin_token" yaml:"admin_token"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout" yaml:"graceful_shutdown_timeout"` // seconds
}

// DatabaseConfig selects the gorm driver and DSN
type DatabaseConfig struct {
	Driver string `json:"driver" yaml:"driver"` // sqlite, mysql
	DSN    string `json:"dsn" yaml:"dsn"`
	Debug  bool   `json:"debug" yaml:"debug"`
}

// SiteConfig controls settings delivery and page composition
type SiteConfig struct {
	SettingsURL     string   `json:"settings_url" yaml:"settings_url"`         // remote envelope endpoint; empty reads the local database
	FetchTimeout    int      `json:"fetch_timeout" yaml:"fetch_timeout"`       // seconds
	WidgetAllowList []string `json:"widget_allow_list" yaml:"widget_allow_list"` // paths where the chat widget may render
	AllowedOrigins  []string `json:"allowed_origins" yaml:"allowed_origins"`   // CORS origins of the frontend
}

// RateLimitConfig throttles lead submissions per client IP
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerMinute float64 `json:"requests_per_minute" yaml:"requests_per_minute"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// RetentionConfig drives the closed-lead cleanup job
type RetentionConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Cron    string `json:"cron" yaml:"cron"`
	Days    int    `json:"days" yaml:"days"`
}

// NotifyConfig routes new-lead alerts to staff
type NotifyConfig struct {
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`
	Webhook  *WebhookConfig  `json:"webhook" yaml:"webhook"`
	Timeout  int             `json:"timeout" yaml:"timeout"` // seconds per lead across all channels
}

// TelegramConfig represents Telegram bot settings
type TelegramConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	BotToken string `json:"bot_token" yaml:"bot_token"`
	ChatID   string `json:"chat_id" yaml:"chat_id"`
	APIBase  string `json:"api_base,omitempty" yaml:"api_base,omitempty"`
	Timeout  int    `json:"timeout" yaml:"timeout"` // seconds
}

// WebhookConfig represents a chat group bot webhook
type WebhookConfig struct {
	URL        string `json:"url" yaml:"url"`
	MaxRetries int    `json:"max_retries" yaml:"max_retries"`
	RetryDelay int    `json:"retry_delay" yaml:"retry_delay"` // seconds
	Timeout    int    `json:"timeout" yaml:"timeout"`         // seconds
}

// AppConfig represents application-level settings
type AppConfig struct {
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	Environment string `json:"environment" yaml:"environment"`
}

// NewServerConfig creates a server configuration populated from environment variables
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:                    getEnvInt("SERVER_PORT", 8080),
		Address:                 getEnv("SERVER_ADDRESS", "0.0.0.0"),
		AdminToken:              getEnv("ADMIN_TOKEN", ""),
		GracefulShutdownTimeout: getEnvInt("SERVER_SHUTDOWN_TIMEOUT", 15),
	}
}

// NewDatabaseConfig creates a database configuration populated from environment variables
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver: getEnv("DATABASE_DRIVER", "sqlite"),
		DSN:    getEnv("DATABASE_DSN", "returnfilers.db"),
		Debug:  getEnvBool("DATABASE_DEBUG", false),
	}
}

// NewSiteConfig creates a site configuration populated from environment variables
func NewSiteConfig() *SiteConfig {
	return &SiteConfig{
		SettingsURL:     getEnv("SETTINGS_URL", ""),
		FetchTimeout:    getEnvInt("SETTINGS_TIMEOUT", 5),
		WidgetAllowList: parseStringList(getEnv("WIDGET_ALLOW_LIST", "")),
		AllowedOrigins:  parseStringList(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// NewRateLimitConfig creates a rate limit configuration populated from environment variables
func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerMinute: getEnvFloat("RATE_LIMIT_PER_MINUTE", 10),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 5),
	}
}

// NewRetentionConfig creates a retention configuration populated from environment variables
func NewRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled: getEnvBool("RETENTION_ENABLED", false),
		Cron:    getEnv("RETENTION_CRON", "0 3 * * *"),
		Days:    getEnvInt("RETENTION_DAYS", 365),
	}
}

// NewNotifyConfig creates a notification configuration populated from environment variables
func NewNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		Telegram: &TelegramConfig{
			Enabled:  getEnvBool("TELEGRAM_ENABLED", false),
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
			Timeout:  getEnvInt("TELEGRAM_TIMEOUT", 10),
		},
		Webhook: &WebhookConfig{
			URL:        getEnv("LEAD_WEBHOOK_URL", ""),
			MaxRetries: getEnvInt("LEAD_WEBHOOK_RETRIES", 2),
			RetryDelay: getEnvInt("LEAD_WEBHOOK_RETRY_DELAY", 2),
			Timeout:    getEnvInt("LEAD_WEBHOOK_TIMEOUT", 10),
		},
		Timeout: getEnvInt("NOTIFY_TIMEOUT", 30),
	}
}

// NewAppConfig creates an application configuration populated from environment variables
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		Environment: getEnv("APP_ENV", "development"),
	}
}

// Addr returns the listen address
func (sc *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", sc.Address, sc.Port)
}

// ShutdownTimeout returns the graceful shutdown window
func (sc *ServerConfig) ShutdownTimeout() time.Duration {
	if sc.GracefulShutdownTimeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(sc.GracefulShutdownTimeout) * time.Second
}

// Timeout returns the settings fetch timeout
func (sc *SiteConfig) Timeout() time.Duration {
	if sc.FetchTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(sc.FetchTimeout) * time.Second
}

// IsDevelopment reports whether the app runs in development mode
func (ac *AppConfig) IsDevelopment() bool {
	return ac.Environment == "" || ac.Environment == "development"
}

// SendTimeout bounds delivery of a single lead alert
func (nc *NotifyConfig) SendTimeout() time.Duration {
	if nc.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(nc.Timeout) * time.Second
}

// MaxAge returns the retention window
func (rc *RetentionConfig) MaxAge() time.Duration {
	return time.Duration(rc.Days) * 24 * time.Hour
}
