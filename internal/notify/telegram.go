package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// TelegramNotifier implements Notifier via the Telegram Bot API.
type TelegramNotifier struct {
	token   string
	apiBase string
	client  *http.Client
}

// NewTelegramNotifier creates a new TelegramNotifier.
func NewTelegramNotifier(token string, opts ...TelegramOption) *TelegramNotifier {
	t := &TelegramNotifier{
		token:   token,
		apiBase: defaultTelegramAPIBase,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*TelegramNotifier)

// WithTelegramHTTPClient sets a custom HTTP client.
func WithTelegramHTTPClient(c *http.Client) TelegramOption {
	return func(t *TelegramNotifier) {
		t.client = c
	}
}

// WithTelegramAPIBase overrides the Bot API base URL.
func WithTelegramAPIBase(base string) TelegramOption {
	return func(t *TelegramNotifier) {
		t.apiBase = base
	}
}

// sendMessageRequest is the Bot API sendMessage JSON structure.
type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// SendRestock sends a restock message to the subscriber's Telegram chat.
// Subscribers without a captured chat ID cannot be reached.
func (t *TelegramNotifier) SendRestock(ctx context.Context, r *RestockPayload) error {
	if r.TelegramChatID == 0 {
		return fmt.Errorf("no telegram chat id for %s", r.Email)
	}

	payload := sendMessageRequest{
		ChatID:    r.TelegramChatID,
		Text:      buildRestockMessage(r),
		ParseMode: "HTML",
	}
	return t.post(ctx, payload)
}

func buildRestockMessage(r *RestockPayload) string {
	name := html.EscapeString(r.ProductName)
	return fmt.Sprintf(
		"\U0001F6CE <b>%s</b> is back in stock!\n\nPrice: %s\nAvailable: %d\n\n<a href=\"%s\">Buy it now</a>",
		name, r.FormattedPrice(), r.Quantity, r.ProductURL,
	)
}

func (t *TelegramNotifier) post(ctx context.Context, payload sendMessageRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("telegram rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("telegram returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
