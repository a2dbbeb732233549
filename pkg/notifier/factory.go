package notifier

import (
	"returnfilers/pkg/config"
)

// FromConfig builds the notifiers enabled in cfg. It returns nil when none are.
func FromConfig(cfg *config.NotifyConfig) LeadNotifier {
	if cfg == nil {
		return nil
	}

	var m Multi
	if cfg.Telegram != nil && cfg.Telegram.Enabled {
		m = append(m, NewTelegramNotifier(cfg.Telegram))
	}
	if cfg.Webhook != nil && cfg.Webhook.URL != "" {
		m = append(m, NewWebhookNotifier(cfg.Webhook))
	}

	if len(m) == 0 {
		return nil
	}
	return m
}
