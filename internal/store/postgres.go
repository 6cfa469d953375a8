package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Covered by the integration tests behind the "integration" build tag.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProduct inserts or updates a product by its storefront product_id.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	args := pgx.NamedArgs{
		"product_id":         p.ProductID,
		"name":               p.Name,
		"alias":              p.Alias,
		"brand":              p.Brand,
		"price":              p.Price,
		"inventory_quantity": p.InventoryQuantity,
		"was_out_of_stock":   p.WasOutOfStock,
		"image":              p.Image,
		"last_checked":       p.LastChecked,
	}

	return s.pool.QueryRow(ctx, queryUpsertProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProduct retrieves a product by its storefront product ID.
func (s *PostgresStore) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, productID), p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns all tracked products ordered by name.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryListProducts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateSubscription inserts a new active subscription.
func (s *PostgresStore) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	args := pgx.NamedArgs{
		"email":             sub.Email,
		"product_id":        sub.ProductID,
		"telegram_username": sub.TelegramUsername,
	}

	if err := s.pool.QueryRow(ctx, queryCreateSubscription, args).Scan(
		&sub.ID, &sub.SubscribedAt, &sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}
	sub.IsActive = true
	return nil
}

// GetSubscription retrieves a subscription by its (email, product) pair,
// regardless of active state.
func (s *PostgresStore) GetSubscription(
	ctx context.Context,
	email, productID string,
) (*domain.Subscription, error) {
	sub := &domain.Subscription{}
	if err := scanSubscription(s.pool.QueryRow(ctx, queryGetSubscription, email, productID), sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SetSubscriptionActive activates or deactivates a subscription. Reactivation
// resets the subscribed_at timestamp; deactivation leaves it untouched.
func (s *PostgresStore) SetSubscriptionActive(
	ctx context.Context,
	email, productID string,
	active bool,
) error {
	_, err := s.pool.Exec(ctx, querySetSubscriptionActive, email, productID, active)
	if err != nil {
		return fmt.Errorf("setting subscription active: %w", err)
	}
	return nil
}

// FindActiveSubscriptions returns all active subscriptions for a product.
func (s *PostgresStore) FindActiveSubscriptions(
	ctx context.Context,
	productID string,
) ([]domain.Subscription, error) {
	return s.querySubscriptions(ctx, queryFindActiveSubscriptions, productID)
}

// ListSubscriptionsByEmail returns all active subscriptions for an email,
// newest first.
func (s *PostgresStore) ListSubscriptionsByEmail(
	ctx context.Context,
	email string,
) ([]domain.Subscription, error) {
	return s.querySubscriptions(ctx, queryListSubscriptionsByEmail, email)
}

// UpdateSubscriptionChat stores a Telegram chat ID on every subscription row
// carrying the given Telegram username. Returns the number of rows updated.
func (s *PostgresStore) UpdateSubscriptionChat(
	ctx context.Context,
	telegramUsername string,
	chatID int64,
) (int, error) {
	tag, err := s.pool.Exec(ctx, queryUpdateSubscriptionChat, telegramUsername, chatID)
	if err != nil {
		return 0, fmt.Errorf("updating subscription chat: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// querySubscriptions is a helper for subscription list queries.
func (s *PostgresStore) querySubscriptions(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Subscription, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := scanSubscription(rows, &sub); err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Alias, &p.Brand,
		&p.Price, &p.InventoryQuantity, &p.WasOutOfStock, &p.Image,
		&p.LastChecked, &p.CreatedAt, &p.UpdatedAt,
	)
}

func scanSubscription(row scannable, sub *domain.Subscription) error {
	return row.Scan(
		&sub.ID, &sub.Email, &sub.ProductID, &sub.TelegramUsername,
		&sub.TelegramChatID, &sub.IsActive,
		&sub.SubscribedAt, &sub.CreatedAt, &sub.UpdatedAt,
	)
}
