package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when a channel (SMTP or Telegram) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendRestock logs and discards a restock notification.
func (n *NoOpNotifier) SendRestock(_ context.Context, r *RestockPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"product", r.ProductName,
		"email", r.Email,
	)
	return nil
}
