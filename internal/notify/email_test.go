package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRestockEmail(t *testing.T) {
	t.Parallel()

	body, err := renderRestockEmail(&RestockPayload{
		ProductName: "Masala Chai",
		ProductURL:  "https://shop.example.com/product/masala-chai",
		ImageURL:    "https://cdn.example.com/masala-chai.jpg",
		Price:       12.5,
		Quantity:    8,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Masala Chai is back in stock!")
	assert.Contains(t, body, "$12.50")
	assert.Contains(t, body, `href="https://shop.example.com/product/masala-chai"`)
	assert.Contains(t, body, `src="https://cdn.example.com/masala-chai.jpg"`)
	assert.Contains(t, body, "<strong>8</strong>")
}

func TestRenderRestockEmail_NoImage(t *testing.T) {
	t.Parallel()

	body, err := renderRestockEmail(&RestockPayload{
		ProductName: "Masala Chai",
		ProductURL:  "https://shop.example.com/product/masala-chai",
		Price:       12.5,
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<img")
}

func TestRestockPayload_FormattedPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{"whole dollars", 10, "$10.00"},
		{"cents", 7.99, "$7.99"},
		{"zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &RestockPayload{Price: tt.price}
			assert.Equal(t, tt.want, p.FormattedPrice())
		})
	}
}

func TestNewEmailNotifier_NoAuth(t *testing.T) {
	t.Parallel()

	n, err := NewEmailNotifier(EmailConfig{
		Host: "localhost",
		Port: 1025,
		From: "alerts@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alerts@example.com", n.from)
}

// compile-time interface check.
var _ Notifier = (*EmailNotifier)(nil)
