// Package notify defines the notification interface and implementations
// for restock delivery.
package notify

import (
	"context"
	"fmt"
)

// RestockPayload contains the data needed to send a restock notification
// to a single subscriber.
type RestockPayload struct {
	ProductName    string
	ProductURL     string
	ImageURL       string
	Price          float64
	Quantity       int
	Email          string
	TelegramChatID int64
}

// FormattedPrice returns the price as a display string.
func (p *RestockPayload) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}

// Notifier defines the interface for delivering restock notifications
// over a single channel.
type Notifier interface {
	SendRestock(ctx context.Context, r *RestockPayload) error
}
