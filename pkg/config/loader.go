package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration file at configPath.
// A missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := &Config{}
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig writes the configuration to configPath
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath looks in the working directory, then the user and system config directories
func getDefaultConfigPath() string {
	paths := []string{
		"./config.yaml",
		"./config.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".returnfilers", "config.yaml"),
			filepath.Join(homeDir, ".returnfilers", "config.json"),
		)
	}

	paths = append(paths,
		"/etc/returnfilers/config.yaml",
		"/etc/returnfilers/config.json",
	)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./config.yaml"
}

// mergeEnvVars lets environment variables override file values
func mergeEnvVars(config *Config) {
	mergeServerEnvVars(config)
	mergeDatabaseEnvVars(config)
	mergeSiteEnvVars(config)
	mergeRateLimitEnvVars(config)
	mergeRetentionEnvVars(config)
	mergeNotifyEnvVars(config)
	mergeAppEnvVars(config)
}

func mergeServerEnvVars(config *Config) {
	if config.Server == nil {
		config.Server = NewServerConfig()
		return
	}

	if port := getEnvInt("SERVER_PORT", 0); port != 0 {
		config.Server.Port = port
	}
	if address := os.Getenv("SERVER_ADDRESS"); address != "" {
		config.Server.Address = address
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		config.Server.AdminToken = token
	}
	if timeout := getEnvInt("SERVER_SHUTDOWN_TIMEOUT", 0); timeout != 0 {
		config.Server.GracefulShutdownTimeout = timeout
	}
}

func mergeDatabaseEnvVars(config *Config) {
	if config.Database == nil {
		config.Database = NewDatabaseConfig()
		return
	}

	envMappings := map[string]*string{
		"DATABASE_DRIVER": &config.Database.Driver,
		"DATABASE_DSN":    &config.Database.DSN,
	}
	for envKey, fieldPtr := range envMappings {
		if value := os.Getenv(envKey); value != "" {
			*fieldPtr = value
		}
	}

	if debug := os.Getenv("DATABASE_DEBUG"); debug != "" {
		config.Database.Debug = debug == "true" || debug == "1"
	}
}

func mergeSiteEnvVars(config *Config) {
	if config.Site == nil {
		config.Site = NewSiteConfig()
		return
	}

	if url := os.Getenv("SETTINGS_URL"); url != "" {
		config.Site.SettingsURL = url
	}
	if timeout := getEnvInt("SETTINGS_TIMEOUT", 0); timeout != 0 {
		config.Site.FetchTimeout = timeout
	}
	if list := os.Getenv("WIDGET_ALLOW_LIST"); list != "" {
		config.Site.WidgetAllowList = parseStringList(list)
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.Site.AllowedOrigins = parseStringList(origins)
	}
}

func mergeRateLimitEnvVars(config *Config) {
	if config.RateLimit == nil {
		config.RateLimit = NewRateLimitConfig()
		return
	}

	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		config.RateLimit.Enabled = enabled == "true" || enabled == "1"
	}
	if rpm := getEnvFloat("RATE_LIMIT_PER_MINUTE", 0); rpm != 0 {
		config.RateLimit.RequestsPerMinute = rpm
	}
	if burst := getEnvInt("RATE_LIMIT_BURST", 0); burst != 0 {
		config.RateLimit.Burst = burst
	}
}

func mergeRetentionEnvVars(config *Config) {
	if config.Retention == nil {
		config.Retention = NewRetentionConfig()
		return
	}

	if enabled := os.Getenv("RETENTION_ENABLED"); enabled != "" {
		config.Retention.Enabled = enabled == "true" || enabled == "1"
	}
	if cron := os.Getenv("RETENTION_CRON"); cron != "" {
		config.Retention.Cron = cron
	}
	if days := getEnvInt("RETENTION_DAYS", 0); days != 0 {
		config.Retention.Days = days
	}
}

func mergeNotifyEnvVars(config *Config) {
	if config.Notify == nil {
		config.Notify = NewNotifyConfig()
		return
	}
	if config.Notify.Telegram == nil {
		config.Notify.Telegram = NewNotifyConfig().Telegram
	} else {
		tc := config.Notify.Telegram
		if enabled := os.Getenv("TELEGRAM_ENABLED"); enabled != "" {
			tc.Enabled = enabled == "true" || enabled == "1"
		}
		if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
			tc.BotToken = token
		}
		if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
			tc.ChatID = chatID
		}
	}
	if config.Notify.Webhook == nil {
		config.Notify.Webhook = NewNotifyConfig().Webhook
	} else if url := os.Getenv("LEAD_WEBHOOK_URL"); url != "" {
		config.Notify.Webhook.URL = url
	}
	if timeout := getEnvInt("NOTIFY_TIMEOUT", 0); timeout != 0 {
		config.Notify.Timeout = timeout
	}
}

func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.App.LogLevel = logLevel
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.App.LogFile = logFile
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Environment = env
	}
}
