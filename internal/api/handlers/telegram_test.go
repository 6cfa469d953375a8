package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhandekar/restock-tracker/internal/api/handlers"
)

// mockChatLinker is a test double for ChatLinker.
type mockChatLinker struct {
	linked   int
	err      error
	username string
	chatID   int64
	called   bool
}

func (m *mockChatLinker) UpdateSubscriptionChat(_ context.Context, username string, chatID int64) (int, error) {
	m.called = true
	m.username = username
	m.chatID = chatID
	return m.linked, m.err
}

func startUpdate(username string, chatID int64, text string) map[string]any {
	return map[string]any{
		"update_id": 1001,
		"message": map[string]any{
			"text": text,
			"chat": map[string]any{"id": chatID},
			"from": map[string]any{"username": username},
		},
	}
}

func TestTelegramWebhook_LinksChatOnStart(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{linked: 2}
	h := handlers.NewTelegramWebhookHandler(linker, "", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", startUpdate("ChaiFan", 777, "/start"))
	require.Equal(t, http.StatusOK, resp.Code)

	assert.True(t, linker.called)
	assert.Equal(t, "chaifan", linker.username)
	assert.Equal(t, int64(777), linker.chatID)
}

func TestTelegramWebhook_IgnoresOtherMessages(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{}
	h := handlers.NewTelegramWebhookHandler(linker, "", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", startUpdate("chaifan", 777, "hello"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, linker.called)
}

func TestTelegramWebhook_IgnoresStartWithoutUsername(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{}
	h := handlers.NewTelegramWebhookHandler(linker, "", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", startUpdate("", 777, "/start"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, linker.called)
}

func TestTelegramWebhook_IgnoresEmptyUpdate(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{}
	h := handlers.NewTelegramWebhookHandler(linker, "", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", map[string]any{"update_id": 1002})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, linker.called)
}

func TestTelegramWebhook_StoreErrorStillAcknowledges(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{err: errors.New("db error")}
	h := handlers.NewTelegramWebhookHandler(linker, "", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", startUpdate("chaifan", 777, "/start"))
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestTelegramWebhook_SecretRequired(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{}
	h := handlers.NewTelegramWebhookHandler(linker, "hook-secret", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook", startUpdate("chaifan", 777, "/start"))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.False(t, linker.called)
}

func TestTelegramWebhook_SecretAccepted(t *testing.T) {
	t.Parallel()

	linker := &mockChatLinker{linked: 1}
	h := handlers.NewTelegramWebhookHandler(linker, "hook-secret", nil)

	_, api := humatest.New(t)
	handlers.RegisterTelegramRoutes(api, h)

	resp := api.Post("/api/v1/telegram/webhook",
		"X-Telegram-Bot-Api-Secret-Token: hook-secret",
		startUpdate("chaifan", 777, "/start"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, linker.called)
}
