package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"returnfilers/internal/models"
	"returnfilers/pkg/config"
	"returnfilers/pkg/logger"

	"go.uber.org/zap"
)

// WebhookMessage is the group-bot payload shape: {"msgtype":"markdown","markdown":{"content":...}}
type WebhookMessage struct {
	MsgType  string       `json:"msgtype"`
	Markdown *MarkdownMsg `json:"markdown,omitempty"`
}

type MarkdownMsg struct {
	Content string `json:"content"`
}

// WebhookResponse is the optional {errcode, errmsg} body of group-bot webhooks
type WebhookResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// WebhookNotifier posts lead alerts to a chat group webhook, retrying failures
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewWebhookNotifier creates a webhook notifier; zero values get defaults
func NewWebhookNotifier(cfg *config.WebhookConfig) *WebhookNotifier {
	n := &WebhookNotifier{
		url:        cfg.URL,
		maxRetries: cfg.MaxRetries,
		retryDelay: time.Duration(cfg.RetryDelay) * time.Second,
	}
	if n.maxRetries < 0 {
		n.maxRetries = 0
	}
	if n.retryDelay <= 0 {
		n.retryDelay = 2 * time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	n.httpClient = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	return n
}

// NotifyLead sends the formatted lead as Markdown
func (w *WebhookNotifier) NotifyLead(ctx context.Context, lead *models.Lead) error {
	return w.SendMarkdown(ctx, FormatLead(lead))
}

// SendMarkdown sends content, retrying up to maxRetries times
func (w *WebhookNotifier) SendMarkdown(ctx context.Context, content string) error {
	if w.url == "" {
		return fmt.Errorf("%w: webhook URL is empty", ErrNotConfigured)
	}

	msg := &WebhookMessage{MsgType: "markdown", Markdown: &MarkdownMsg{Content: content}}

	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.retryDelay):
			}
		}

		lastErr = w.send(ctx, msg)
		if lastErr == nil {
			return nil
		}
		if attempt < w.maxRetries {
			logger.Warn("Webhook delivery failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", w.maxRetries),
				zap.Error(lastErr))
		}
	}

	return fmt.Errorf("webhook delivery failed after %d retries: %w", w.maxRetries, lastErr)
}

func (w *WebhookNotifier) send(ctx context.Context, msg *WebhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(respBody))
	}

	// plain 2xx bodies are accepted; group bots report errors in errcode
	var webhookResp WebhookResponse
	if len(respBody) > 0 && json.Unmarshal(respBody, &webhookResp) == nil && webhookResp.ErrCode != 0 {
		return fmt.Errorf("webhook error: %d %s", webhookResp.ErrCode, webhookResp.ErrMsg)
	}
	return nil
}
