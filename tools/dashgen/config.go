package main

import "errors"

// KnownMetrics is the set of metric names exported by restock-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"restock_http_request_duration_seconds": true,
	"restock_http_requests_total":           true,

	// Health metrics.
	"restock_healthz_up": true,
	"restock_readyz_up":  true,

	// Reconcile metrics.
	"restock_reconcile_duration_seconds": true,
	"restock_reconcile_errors_total":     true,
	"restock_products_added_total":       true,
	"restock_products_updated_total":     true,
	"restock_restocks_detected_total":    true,

	// Storefront API metrics.
	"restock_shop_api_calls_total":        true,
	"restock_shop_daily_usage":            true,
	"restock_shop_daily_limit_hits_total": true,

	// Notification metrics.
	"restock_notifications_sent_total":    true,
	"restock_notification_failures_total": true,

	// Recording rules.
	"restock:http_requests:rate5m":         true,
	"restock:http_errors:rate5m":           true,
	"restock:reconcile_errors:rate5m":      true,
	"restock:restocks:rate1h":              true,
	"restock:shop_api_calls:rate5m":        true,
	"restock:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
