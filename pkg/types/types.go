// Package domain defines the core business types for restock-tracker.
package domain

import (
	"strings"
	"time"
)

// Product is a tracked storefront product with its last observed stock level.
type Product struct {
	ID                string    `json:"id"                 db:"id"`
	ProductID         string    `json:"product_id"         db:"product_id"`
	Name              string    `json:"name"               db:"name"`
	Alias             string    `json:"alias"              db:"alias"`
	Brand             string    `json:"brand,omitempty"    db:"brand"`
	Price             float64   `json:"price"              db:"price"`
	InventoryQuantity int       `json:"inventory_quantity" db:"inventory_quantity"`
	WasOutOfStock     bool      `json:"was_out_of_stock"   db:"was_out_of_stock"`
	Image             string    `json:"image,omitempty"    db:"image"`
	LastChecked       time.Time `json:"last_checked"       db:"last_checked"`
	CreatedAt         time.Time `json:"created_at"         db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"         db:"updated_at"`
}

// DefaultStorefrontURL is the base used to build product page links from aliases.
const DefaultStorefrontURL = "https://shop.example.com/en/product/"

// URL returns the storefront page for this product, derived from its alias.
func (p *Product) URL(base string) string {
	if base == "" {
		base = DefaultStorefrontURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + p.Alias
}

// Subscription is a subscriber's interest in one product. The (email,
// product_id) pair is unique regardless of IsActive; unsubscribing flips the
// flag rather than deleting the row, and re-subscribing flips it back.
type Subscription struct {
	ID               string    `json:"id"                          db:"id"`
	Email            string    `json:"email"                       db:"email"`
	ProductID        string    `json:"product_id"                  db:"product_id"`
	TelegramUsername string    `json:"telegram_username,omitempty" db:"telegram_username"`
	TelegramChatID   int64     `json:"telegram_chat_id,omitempty"  db:"telegram_chat_id"`
	IsActive         bool      `json:"is_active"                   db:"is_active"`
	SubscribedAt     time.Time `json:"subscribed_at"               db:"subscribed_at"`
	CreatedAt        time.Time `json:"created_at"                  db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"                  db:"updated_at"`
}

// HasTelegram reports whether this subscription can receive chat
// notifications: it needs both a username and a resolved chat ID.
func (s *Subscription) HasTelegram() bool {
	return s.TelegramUsername != "" && s.TelegramChatID != 0
}

// NormalizeEmail canonicalizes a subscriber address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubscriptionWithProduct joins a subscription with its product for API reads.
type SubscriptionWithProduct struct {
	Subscription
	Product Product `json:"product"`
}

// ReconcileResult summarizes one reconciliation pass over a snapshot.
type ReconcileResult struct {
	Updated   int       `json:"updated"`
	Added     int       `json:"added"`
	Restocked []Product `json:"restocked"`
}

// RestockedIDs returns the external ids of products that transitioned back
// in stock during the pass.
func (r *ReconcileResult) RestockedIDs() []string {
	ids := make([]string, 0, len(r.Restocked))
	for i := range r.Restocked {
		ids = append(ids, r.Restocked[i].ProductID)
	}
	return ids
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
