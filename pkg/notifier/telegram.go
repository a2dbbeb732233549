package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"returnfilers/internal/models"
	"returnfilers/pkg/config"
	"returnfilers/pkg/logger"

	"go.uber.org/zap"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier posts lead alerts to a Telegram chat through a bot
type TelegramNotifier struct {
	config     *config.TelegramConfig
	apiBase    string
	httpClient *http.Client
}

// TelegramMessage represents a message to be sent via Telegram
type TelegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// TelegramResponse represents Telegram API response
type TelegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// NewTelegramNotifier creates a new Telegram notifier
func NewTelegramNotifier(cfg *config.TelegramConfig) *TelegramNotifier {
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultTelegramAPI
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	return &TelegramNotifier{
		config:     cfg,
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// NotifyLead sends the formatted lead
func (t *TelegramNotifier) NotifyLead(ctx context.Context, lead *models.Lead) error {
	return t.SendMessage(ctx, FormatLead(lead))
}

// SendMessage sends a message via Telegram
func (t *TelegramNotifier) SendMessage(ctx context.Context, message string) error {
	if !t.config.Enabled {
		logger.Debug("Telegram notifications disabled")
		return nil
	}
	if err := t.ValidateConfig(); err != nil {
		return err
	}

	return t.sendTelegramMessage(ctx, &TelegramMessage{
		ChatID:    t.config.ChatID,
		Text:      message,
		ParseMode: "Markdown",
	})
}

// ValidateConfig validates Telegram configuration
func (t *TelegramNotifier) ValidateConfig() error {
	if !t.config.Enabled {
		return nil
	}
	if t.config.BotToken == "" {
		return fmt.Errorf("%w: telegram bot token is required when enabled", ErrNotConfigured)
	}
	if t.config.ChatID == "" {
		return fmt.Errorf("%w: telegram chat ID is required when enabled", ErrNotConfigured)
	}
	return nil
}

func (t *TelegramNotifier) sendTelegramMessage(ctx context.Context, message *TelegramMessage) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.config.BotToken)

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var telegramResp TelegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&telegramResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !telegramResp.OK {
		return fmt.Errorf("telegram API error: %s (code: %d)", telegramResp.Description, telegramResp.ErrorCode)
	}

	logger.Debug("Telegram message sent", zap.String("chat_id", message.ChatID))
	return nil
}
