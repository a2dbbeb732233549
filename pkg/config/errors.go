package config

import "errors"

// Configuration-related sentinel errors
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidFormat  = errors.New("invalid configuration file format")

	ErrMissingRequired = errors.New("missing required configuration item")
	ErrInvalidValue    = errors.New("invalid configuration value")

	ErrServerConfig    = errors.New("server configuration error")
	ErrDatabaseConfig  = errors.New("database configuration error")
	ErrSiteConfig      = errors.New("site configuration error")
	ErrRateLimitConfig = errors.New("rate limit configuration error")
	ErrRetentionConfig = errors.New("retention configuration error")
	ErrNotifyConfig    = errors.New("notify configuration error")
	ErrInvalidCron     = errors.New("invalid cron expression")
)
