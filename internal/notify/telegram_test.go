package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_SendRestock(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("test-token", WithTelegramAPIBase(srv.URL))
	err := n.SendRestock(context.Background(), &RestockPayload{
		ProductName:    "Masala Chai",
		ProductURL:     "https://shop.example.com/product/masala-chai",
		Price:          12.50,
		Quantity:       8,
		Email:          "user@example.com",
		TelegramChatID: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, int64(42), gotBody.ChatID)
	assert.Equal(t, "HTML", gotBody.ParseMode)
	assert.Contains(t, gotBody.Text, "Masala Chai")
	assert.Contains(t, gotBody.Text, "$12.50")
	assert.Contains(t, gotBody.Text, "Available: 8")
}

func TestTelegramNotifier_SendRestock_NoChatID(t *testing.T) {
	t.Parallel()

	n := NewTelegramNotifier("test-token")
	err := n.SendRestock(context.Background(), &RestockPayload{
		ProductName: "Masala Chai",
		Email:       "user@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no telegram chat id")
}

func TestTelegramNotifier_SendRestock_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("test-token", WithTelegramAPIBase(srv.URL))
	err := n.SendRestock(context.Background(), &RestockPayload{
		ProductName:    "Masala Chai",
		TelegramChatID: 42,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTelegramNotifier_SendRestock_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream broken"))
	}))
	defer srv.Close()

	n := NewTelegramNotifier("test-token", WithTelegramAPIBase(srv.URL))
	err := n.SendRestock(context.Background(), &RestockPayload{
		ProductName:    "Masala Chai",
		TelegramChatID: 42,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream broken")
}

func TestBuildRestockMessage_EscapesHTML(t *testing.T) {
	t.Parallel()

	msg := buildRestockMessage(&RestockPayload{
		ProductName: "Chai <Special> & Spicy",
		Price:       5,
		Quantity:    1,
	})
	assert.Contains(t, msg, "Chai &lt;Special&gt; &amp; Spicy")
	assert.NotContains(t, msg, "<Special>")
}

// compile-time interface check.
var _ Notifier = (*TelegramNotifier)(nil)
