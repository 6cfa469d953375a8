package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mkhandekar/restock-tracker/internal/metrics"
)

const (
	defaultCatalogURL = "https://shop.example.com/api/1/entity/ms.products"
	defaultCategory   = "protein"
	defaultPageLimit  = 100
)

// CatalogClient implements ShopClient against the storefront products endpoint.
type CatalogClient struct {
	catalogURL  string
	category    string
	substore    string
	pageLimit   int
	client      *http.Client
	rateLimiter *RateLimiter
}

// CatalogOption configures the CatalogClient.
type CatalogOption func(*CatalogClient)

// WithCatalogURL overrides the default products endpoint.
func WithCatalogURL(u string) CatalogOption {
	return func(c *CatalogClient) {
		c.catalogURL = u
	}
}

// WithCategory restricts the snapshot to one storefront category.
func WithCategory(cat string) CatalogOption {
	return func(c *CatalogClient) {
		c.category = cat
	}
}

// WithSubstore sets the storefront substore identifier.
func WithSubstore(s string) CatalogOption {
	return func(c *CatalogClient) {
		c.substore = s
	}
}

// WithPageLimit sets the maximum records requested per fetch.
func WithPageLimit(n int) CatalogOption {
	return func(c *CatalogClient) {
		c.pageLimit = n
	}
}

// WithCatalogHTTPClient overrides the default HTTP client.
func WithCatalogHTTPClient(hc *http.Client) CatalogOption {
	return func(c *CatalogClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every FetchProducts() call goes through Wait()
// first.
func WithRateLimiter(r *RateLimiter) CatalogOption {
	return func(c *CatalogClient) {
		c.rateLimiter = r
	}
}

// NewCatalogClient creates a new storefront catalog client.
func NewCatalogClient(opts ...CatalogOption) *CatalogClient {
	c := &CatalogClient{
		catalogURL: defaultCatalogURL,
		category:   defaultCategory,
		pageLimit:  defaultPageLimit,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type catalogAPIResponse struct {
	Data []ProductData `json:"data"`
}

// FetchProducts implements ShopClient.FetchProducts by querying the products
// endpoint. All failure modes wrap ErrSourceUnavailable so callers can abort
// the pass with errors.Is.
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]ProductData, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.ShopDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.ShopAPICallsTotal.Inc()
		metrics.ShopDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.buildFetchURL()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: executing fetch: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w: storefront API status %d: %s",
			ErrSourceUnavailable, resp.StatusCode, string(body),
		)
	}

	var apiResp catalogAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: parsing snapshot: %v", ErrSourceUnavailable, err)
	}

	return apiResp.Data, nil
}

func (c *CatalogClient) buildFetchURL() string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.pageLimit))
	params.Set("fields[name]", "1")
	params.Set("fields[alias]", "1")
	params.Set("fields[brand]", "1")
	params.Set("fields[price]", "1")
	params.Set("fields[images]", "1")
	params.Set("fields[inventory_quantity]", "1")

	if c.category != "" {
		params.Set("filters[0][field]", "categories")
		params.Set("filters[0][value][0]", c.category)
		params.Set("filters[0][operator]", "in")
	}
	if c.substore != "" {
		params.Set("substore", c.substore)
	}

	return c.catalogURL + "?" + params.Encode()
}
