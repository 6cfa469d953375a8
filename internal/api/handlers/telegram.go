package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// ChatLinker links a Telegram chat to the subscriptions carrying a
// matching username.
type ChatLinker interface {
	UpdateSubscriptionChat(ctx context.Context, telegramUsername string, chatID int64) (int, error)
}

// TelegramWebhookHandler receives bot updates from the Telegram API and
// records chat IDs so notifications can be delivered.
type TelegramWebhookHandler struct {
	store  ChatLinker
	secret string
	log    *slog.Logger
}

// NewTelegramWebhookHandler creates a new TelegramWebhookHandler. The
// secret is compared against the header Telegram echoes back when the
// webhook was registered with one; empty disables the check.
func NewTelegramWebhookHandler(s ChatLinker, secret string, log *slog.Logger) *TelegramWebhookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TelegramWebhookHandler{store: s, secret: secret, log: log}
}

// TelegramUpdate is the subset of the Telegram update payload the
// webhook needs.
type TelegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From struct {
			Username string `json:"username"`
		} `json:"from"`
	} `json:"message,omitempty"`
}

// TelegramWebhookInput is the request for a Telegram bot update.
type TelegramWebhookInput struct {
	SecretToken string `header:"X-Telegram-Bot-Api-Secret-Token" doc:"Webhook secret token"`
	Body        TelegramUpdate
}

// TelegramWebhookOutput acknowledges a Telegram bot update.
type TelegramWebhookOutput struct {
	Body StatusResponse
}

// Webhook handles a bot update. A "/start" message from a user with a
// username links that chat to any subscriptions carrying the username.
// Updates that do not match are acknowledged and dropped; returning an
// error would make Telegram redeliver them indefinitely.
func (h *TelegramWebhookHandler) Webhook(
	ctx context.Context,
	input *TelegramWebhookInput,
) (*TelegramWebhookOutput, error) {
	if h.secret != "" && input.SecretToken != h.secret {
		return nil, huma.Error401Unauthorized("invalid webhook secret")
	}

	resp := &TelegramWebhookOutput{}
	resp.Body.Status = "ok"

	msg := input.Body.Message
	if msg == nil || !strings.HasPrefix(strings.TrimSpace(msg.Text), "/start") {
		return resp, nil
	}

	username := normalizeTelegramUsername(msg.From.Username)
	if username == "" || msg.Chat.ID == 0 {
		h.log.Debug("telegram start without username, ignoring", "chat_id", msg.Chat.ID)
		return resp, nil
	}

	linked, err := h.store.UpdateSubscriptionChat(ctx, username, msg.Chat.ID)
	if err != nil {
		h.log.Error("linking telegram chat failed", "username", username, "error", err)
		return resp, nil
	}

	h.log.Info("linked telegram chat",
		"username", username,
		"chat_id", msg.Chat.ID,
		"subscriptions", linked)
	return resp, nil
}

// RegisterTelegramRoutes registers the Telegram webhook endpoint with the Huma API.
func RegisterTelegramRoutes(api huma.API, h *TelegramWebhookHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "telegram-webhook",
		Method:      http.MethodPost,
		Path:        "/api/v1/telegram/webhook",
		Summary:     "Telegram bot webhook",
		Description: "Receives bot updates and links chats to subscriptions on /start.",
		Tags:        []string{"telegram"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Webhook)
}
