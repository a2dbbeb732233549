package config

// Config is the main configuration structure
type Config struct {
	Server    *ServerConfig    `json:"server" yaml:"server"`
	Database  *DatabaseConfig  `json:"database" yaml:"database"`
	Site      *SiteConfig      `json:"site" yaml:"site"`
	RateLimit *RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
	Retention *RetentionConfig `json:"retention" yaml:"retention"`
	Notify    *NotifyConfig    `json:"notify" yaml:"notify"`
	App       *AppConfig       `json:"app" yaml:"app"`
}

// getDefaultConfig returns a configuration where every section holds its defaults
func getDefaultConfig() *Config {
	return &Config{
		Server:    NewServerConfig(),
		Database:  NewDatabaseConfig(),
		Site:      NewSiteConfig(),
		RateLimit: NewRateLimitConfig(),
		Retention: NewRetentionConfig(),
		Notify:    NewNotifyConfig(),
		App:       NewAppConfig(),
	}
}

// Default returns the default configuration
func Default() *Config {
	return getDefaultConfig()
}

// GetServerConfig returns the server section or its defaults
func (c *Config) GetServerConfig() *ServerConfig {
	if c.Server != nil {
		return c.Server
	}
	return NewServerConfig()
}

// GetDatabaseConfig returns the database section or its defaults
func (c *Config) GetDatabaseConfig() *DatabaseConfig {
	if c.Database != nil {
		return c.Database
	}
	return NewDatabaseConfig()
}

// GetSiteConfig returns the site section or its defaults
func (c *Config) GetSiteConfig() *SiteConfig {
	if c.Site != nil {
		return c.Site
	}
	return NewSiteConfig()
}

// GetRateLimitConfig returns the rate limit section or its defaults
func (c *Config) GetRateLimitConfig() *RateLimitConfig {
	if c.RateLimit != nil {
		return c.RateLimit
	}
	return NewRateLimitConfig()
}

// GetRetentionConfig returns the retention section or its defaults
func (c *Config) GetRetentionConfig() *RetentionConfig {
	if c.Retention != nil {
		return c.Retention
	}
	return NewRetentionConfig()
}

// GetNotifyConfig returns the notify section or its defaults
func (c *Config) GetNotifyConfig() *NotifyConfig {
	if c.Notify != nil {
		return c.Notify
	}
	return NewNotifyConfig()
}

// GetAppConfig returns the app section or its defaults
func (c *Config) GetAppConfig() *AppConfig {
	if c.App != nil {
		return c.App
	}
	return NewAppConfig()
}
