// Package engine orchestrates reconciliation passes: fetching the storefront
// snapshot, diffing it against stored state, and dispatching restock
// notifications.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mkhandekar/restock-tracker/internal/metrics"
	"github.com/mkhandekar/restock-tracker/internal/shop"
	"github.com/mkhandekar/restock-tracker/internal/store"
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// ErrPassInProgress is returned when a reconciliation pass is requested while
// another one is still running. Passes never overlap.
var ErrPassInProgress = errors.New("reconciliation pass already in progress")

// Engine orchestrates snapshot fetching, stock diffing, and notification dispatch.
type Engine struct {
	store      store.Store
	shop       shop.ShopClient
	dispatcher *Dispatcher
	log        *slog.Logger
	now        func() time.Time

	passMu sync.Mutex
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c shop.ShopClient,
	d *Dispatcher,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:      s,
		shop:       c,
		dispatcher: d,
		log:        slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the clock used for last_checked timestamps.
func WithNowFunc(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Reconcile executes one reconciliation pass: fetch the full storefront
// snapshot, upsert every record, detect out-of-stock to in-stock transitions
// against the previously stored state, and dispatch notifications for them.
//
// Only one pass runs at a time; a concurrent call returns ErrPassInProgress.
// A snapshot fetch failure aborts the pass without touching stored state.
// Per-record persistence failures skip that record and continue.
func (eng *Engine) Reconcile(ctx context.Context) (*domain.ReconcileResult, error) {
	if !eng.passMu.TryLock() {
		return nil, ErrPassInProgress
	}
	defer eng.passMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
	}()

	records, err := eng.shop.FetchProducts(ctx)
	if err != nil {
		metrics.ReconcileErrorsTotal.Inc()
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}

	eng.log.Info("snapshot fetched", "records", len(records))

	result := &domain.ReconcileResult{}
	checkedAt := eng.now()

	for i := range records {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		eng.reconcileRecord(ctx, &records[i], checkedAt, result)
	}

	if len(result.Restocked) > 0 {
		eng.log.Info("restocks detected", "products", result.RestockedIDs())
		if eng.dispatcher != nil {
			report := eng.dispatcher.DispatchRestocks(ctx, result.Restocked)
			eng.log.Info("notifications dispatched",
				"attempted", report.Attempted,
				"sent", report.Sent,
				"failed", report.Failed,
			)
		}
	}

	eng.log.Info("reconcile pass complete",
		"updated", result.Updated,
		"added", result.Added,
		"restocked", len(result.Restocked),
		"duration", time.Since(start),
	)

	return result, nil
}

// reconcileRecord upserts one snapshot record and flags a restock when the
// previously stored state was out of stock and the new quantity is positive.
// The stored flag is read before the upsert mutates it.
func (eng *Engine) reconcileRecord(
	ctx context.Context,
	rec *shop.ProductData,
	checkedAt time.Time,
	result *domain.ReconcileResult,
) {
	stored, err := eng.store.GetProduct(ctx, rec.ID)
	isNew := errors.Is(err, pgx.ErrNoRows)
	if err != nil && !isNew {
		eng.log.Error("reading stored product failed", "product_id", rec.ID, "error", err)
		return
	}

	p := shop.ToProduct(rec)
	p.LastChecked = checkedAt

	if err := eng.store.UpsertProduct(ctx, &p); err != nil {
		eng.log.Error("upsert failed", "product_id", rec.ID, "error", err)
		return
	}

	if isNew {
		// First sighting establishes a baseline; it never notifies,
		// even if the product arrives in stock.
		result.Added++
		metrics.ProductsAddedTotal.Inc()
		eng.log.Info("product discovered", "product_id", rec.ID, "name", rec.Name)
		return
	}

	result.Updated++
	metrics.ProductsUpdatedTotal.Inc()

	if stored.WasOutOfStock && rec.InventoryQuantity > 0 {
		result.Restocked = append(result.Restocked, p)
		metrics.RestocksDetectedTotal.Inc()
	}
}
