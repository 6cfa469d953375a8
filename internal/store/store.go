// Package store defines the datastore abstraction for restock-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// Store defines all data access operations for restock-tracker.
type Store interface {
	// Products
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpsertProduct(ctx context.Context, p *domain.Product) error

	// Subscriptions
	CreateSubscription(ctx context.Context, s *domain.Subscription) error
	GetSubscription(ctx context.Context, email, productID string) (*domain.Subscription, error)
	SetSubscriptionActive(ctx context.Context, email, productID string, active bool) error
	FindActiveSubscriptions(ctx context.Context, productID string) ([]domain.Subscription, error)
	ListSubscriptionsByEmail(ctx context.Context, email string) ([]domain.Subscription, error)
	UpdateSubscriptionChat(ctx context.Context, telegramUsername string, chatID int64) (int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
