package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/sjson"
)

const (
	DefaultTelegramAPIURL = "https://api.telegram.org"
	DefaultTimeout        = 5 * time.Second
)

type TelegramConfig struct {
	APIURL   string
	BotToken string
	ChatID   string
	Timeout  time.Duration
}

// Enabled reports whether both the bot token and the chat id are set.
func (c TelegramConfig) Enabled() bool {
	return strings.TrimSpace(c.BotToken) != "" && strings.TrimSpace(c.ChatID) != ""
}

type TelegramRelay struct {
	endpoint string
	chatID   string
	timeout  time.Duration
	client   *http.Client
}

func NewTelegramRelay(cfg TelegramConfig) *TelegramRelay {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TelegramRelay{
		endpoint: fmt.Sprintf("%s/bot%s/sendMessage", apiURL, cfg.BotToken),
		chatID:   cfg.ChatID,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

func (t *TelegramRelay) Relay(ctx context.Context, text string) error {
	payload, err := sjson.SetBytes([]byte(`{}`), "chat_id", t.chatID)
	if err != nil {
		return err
	}
	if payload, err = sjson.SetBytes(payload, "text", text); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.New("telegram relay: invalid endpoint")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		// The request URL carries the bot token; keep it out of the error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("telegram relay: %w", urlErr.Err)
		}
		return fmt.Errorf("telegram relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram relay: unexpected status %d", resp.StatusCode)
	}
	return nil
}
