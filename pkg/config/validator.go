package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// ValidateConfig validates the complete configuration
func (c *Config) ValidateConfig() error {
	if err := c.validateServerConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrServerConfig, err)
	}

	if err := c.validateDatabaseConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseConfig, err)
	}

	if err := c.validateSiteConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrSiteConfig, err)
	}

	if err := c.validateRateLimitConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrRateLimitConfig, err)
	}

	if err := c.validateRetentionConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrRetentionConfig, err)
	}

	if err := c.validateNotifyConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyConfig, err)
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	sc := c.GetServerConfig()

	if sc.Port <= 0 || sc.Port > 65535 {
		return fmt.Errorf("%w: port must be within 1-65535", ErrInvalidValue)
	}

	return nil
}

func (c *Config) validateDatabaseConfig() error {
	dc := c.GetDatabaseConfig()

	if !isValidValue(dc.Driver, []string{"sqlite", "mysql"}) {
		return fmt.Errorf("%w: driver must be 'sqlite' or 'mysql'", ErrInvalidValue)
	}

	if dc.DSN == "" {
		return fmt.Errorf("%w: dsn", ErrMissingRequired)
	}

	return nil
}

func (c *Config) validateSiteConfig() error {
	sc := c.GetSiteConfig()

	if sc.SettingsURL != "" {
		u, err := url.Parse(sc.SettingsURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: settings_url must be an absolute http(s) URL", ErrInvalidValue)
		}
	}

	if sc.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout cannot be negative", ErrInvalidValue)
	}

	for _, entry := range sc.WidgetAllowList {
		if !strings.HasPrefix(entry, "/") {
			return fmt.Errorf("%w: widget_allow_list entry %q must start with /", ErrInvalidValue, entry)
		}
	}

	return nil
}

func (c *Config) validateRateLimitConfig() error {
	rc := c.GetRateLimitConfig()
	if !rc.Enabled {
		return nil
	}

	if rc.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: requests_per_minute must be positive", ErrInvalidValue)
	}

	if rc.Burst <= 0 {
		rc.Burst = 1
	}

	return nil
}

func (c *Config) validateRetentionConfig() error {
	rc := c.GetRetentionConfig()
	if !rc.Enabled {
		return nil
	}

	if rc.Days <= 0 {
		return fmt.Errorf("%w: days must be positive", ErrInvalidValue)
	}

	if !isValidCronExpression(rc.Cron) {
		return ErrInvalidCron
	}

	return nil
}

func (c *Config) validateNotifyConfig() error {
	nc := c.GetNotifyConfig()

	if tc := nc.Telegram; tc != nil && tc.Enabled {
		if tc.BotToken == "" {
			return fmt.Errorf("%w: telegram.bot_token", ErrMissingRequired)
		}
		if tc.ChatID == "" {
			return fmt.Errorf("%w: telegram.chat_id", ErrMissingRequired)
		}
	}

	if wc := nc.Webhook; wc != nil && wc.URL != "" {
		u, err := url.Parse(wc.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: webhook.url must be an absolute http(s) URL", ErrInvalidValue)
		}
		if wc.MaxRetries < 0 {
			return fmt.Errorf("%w: webhook.max_retries cannot be negative", ErrInvalidValue)
		}
	}

	return nil
}

func isValidValue(value string, validValues []string) bool {
	for _, valid := range validValues {
		if value == valid {
			return true
		}
	}
	return false
}

func isValidCronExpression(expr string) bool {
	_, err := cron.ParseStandard(expr)
	return err == nil
}
