package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mkhandekar/restock-tracker/internal/metrics"
	"github.com/mkhandekar/restock-tracker/internal/notify"
	"github.com/mkhandekar/restock-tracker/internal/store"
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

const (
	channelEmail    = "email"
	channelTelegram = "telegram"

	defaultSendTimeout = 15 * time.Second
)

// DispatchReport summarizes the outcome of one notification fan-out.
type DispatchReport struct {
	Attempted int
	Sent      int
	Failed    int
}

// Dispatcher fans restock notifications out to active subscribers. Every
// subscriber gets an email; subscribers with a captured Telegram chat
// additionally get a chat message. Sends run concurrently and one failure
// never blocks the others.
type Dispatcher struct {
	store    store.Store
	email    notify.Notifier
	telegram notify.Notifier
	log      *slog.Logger

	storefrontBase string
	sendTimeout    time.Duration
}

// NewDispatcher creates a Dispatcher with the given channel notifiers.
func NewDispatcher(
	s store.Store,
	email notify.Notifier,
	telegram notify.Notifier,
	opts ...DispatchOption,
) *Dispatcher {
	d := &Dispatcher{
		store:          s,
		email:          email,
		telegram:       telegram,
		log:            slog.Default(),
		storefrontBase: domain.DefaultStorefrontURL,
		sendTimeout:    defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DispatchOption configures a Dispatcher.
type DispatchOption func(*Dispatcher)

// WithDispatchLogger sets a custom logger.
func WithDispatchLogger(l *slog.Logger) DispatchOption {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithStorefrontBase sets the base URL used to build product links.
func WithStorefrontBase(base string) DispatchOption {
	return func(d *Dispatcher) {
		d.storefrontBase = base
	}
}

// WithSendTimeout bounds each individual notification send.
func WithSendTimeout(timeout time.Duration) DispatchOption {
	return func(d *Dispatcher) {
		d.sendTimeout = timeout
	}
}

// DispatchRestocks notifies all active subscribers of every restocked
// product. Subscriber lookups that fail are logged and skipped; the
// remaining products still dispatch.
func (d *Dispatcher) DispatchRestocks(
	ctx context.Context,
	products []domain.Product,
) DispatchReport {
	var attempted, sent, failed atomic.Int64
	var wg sync.WaitGroup

	for i := range products {
		p := &products[i]

		subs, err := d.store.FindActiveSubscriptions(ctx, p.ProductID)
		if err != nil {
			d.log.Error("listing subscribers failed", "product_id", p.ProductID, "error", err)
			continue
		}
		if len(subs) == 0 {
			d.log.Debug("no active subscribers", "product_id", p.ProductID)
			continue
		}

		for j := range subs {
			sub := &subs[j]
			payload := d.buildPayload(p, sub)

			attempted.Add(1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.send(ctx, channelEmail, d.email, payload, &sent, &failed)
			}()

			if sub.HasTelegram() {
				attempted.Add(1)
				wg.Add(1)
				go func() {
					defer wg.Done()
					d.send(ctx, channelTelegram, d.telegram, payload, &sent, &failed)
				}()
			}
		}
	}

	wg.Wait()

	return DispatchReport{
		Attempted: int(attempted.Load()),
		Sent:      int(sent.Load()),
		Failed:    int(failed.Load()),
	}
}

func (d *Dispatcher) send(
	ctx context.Context,
	channel string,
	n notify.Notifier,
	payload *notify.RestockPayload,
	sent, failed *atomic.Int64,
) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := n.SendRestock(sendCtx, payload); err != nil {
		d.log.Error("notification failed",
			"channel", channel,
			"product", payload.ProductName,
			"email", payload.Email,
			"error", err,
		)
		metrics.NotificationFailuresTotal.WithLabelValues(channel).Inc()
		failed.Add(1)
		return
	}

	metrics.NotificationsSentTotal.WithLabelValues(channel).Inc()
	sent.Add(1)
}

func (d *Dispatcher) buildPayload(
	p *domain.Product,
	sub *domain.Subscription,
) *notify.RestockPayload {
	return &notify.RestockPayload{
		ProductName:    p.Name,
		ProductURL:     p.URL(d.storefrontBase),
		ImageURL:       p.Image,
		Price:          p.Price,
		Quantity:       p.InventoryQuantity,
		Email:          sub.Email,
		TelegramChatID: sub.TelegramChatID,
	}
}
