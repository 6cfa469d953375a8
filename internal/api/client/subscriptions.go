package client

import (
	"context"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// subscribeRequest contains only the fields the API accepts.
type subscribeRequest struct {
	Email            string `json:"email"`
	ProductID        string `json:"product_id"`
	TelegramUsername string `json:"telegram_username,omitempty"`
}

// SubscribeResult is the API response for a subscribe request.
type SubscribeResult struct {
	Status       string              `json:"status"`
	Subscription domain.Subscription `json:"subscription"`
}

// Subscribe creates or reactivates a subscription for a product.
func (c *Client) Subscribe(ctx context.Context, email, productID, telegramUsername string) (*SubscribeResult, error) {
	req := subscribeRequest{
		Email:            email,
		ProductID:        productID,
		TelegramUsername: telegramUsername,
	}

	var result SubscribeResult
	if err := c.post(ctx, "/api/v1/subscriptions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Unsubscribe deactivates a subscription for a product.
func (c *Client) Unsubscribe(ctx context.Context, email, productID string) error {
	req := subscribeRequest{Email: email, ProductID: productID}
	return c.post(ctx, "/api/v1/subscriptions/unsubscribe", req, nil)
}

// ListSubscriptions returns a subscriber's active subscriptions with
// current product state.
func (c *Client) ListSubscriptions(ctx context.Context, email string) ([]domain.SubscriptionWithProduct, error) {
	var subs []domain.SubscriptionWithProduct
	if err := c.get(ctx, "/api/v1/subscriptions/"+email, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
