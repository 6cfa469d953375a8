package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_URL(t *testing.T) {
	t.Parallel()

	p := &Product{Alias: "masala-chai"}

	assert.Equal(t, DefaultStorefrontURL+"masala-chai", p.URL(""))
	assert.Equal(t, "https://other.example.com/p/masala-chai", p.URL("https://other.example.com/p/"))
	assert.Equal(t, "https://other.example.com/p/masala-chai", p.URL("https://other.example.com/p"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"already@example.com", "already@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestSubscription_HasTelegram(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Subscription{}).HasTelegram())
	assert.False(t, (&Subscription{TelegramUsername: "chailover"}).HasTelegram())
	assert.False(t, (&Subscription{TelegramChatID: 42}).HasTelegram())
	assert.True(t, (&Subscription{TelegramUsername: "chailover", TelegramChatID: 42}).HasTelegram())
}

func TestReconcileResult_RestockedIDs(t *testing.T) {
	t.Parallel()

	r := &ReconcileResult{
		Restocked: []Product{
			{ProductID: "p1"},
			{ProductID: "p2"},
		},
	}
	assert.Equal(t, []string{"p1", "p2"}, r.RestockedIDs())

	empty := &ReconcileResult{}
	assert.Empty(t, empty.RestockedIDs())
}
