package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// SubscriptionsProvider defines the store methods required by the
// subscriptions handler.
type SubscriptionsProvider interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateSubscription(ctx context.Context, s *domain.Subscription) error
	GetSubscription(ctx context.Context, email, productID string) (*domain.Subscription, error)
	SetSubscriptionActive(ctx context.Context, email, productID string, active bool) error
	ListSubscriptionsByEmail(ctx context.Context, email string) ([]domain.Subscription, error)
}

// SubscriptionsHandler handles subscribe/unsubscribe requests.
type SubscriptionsHandler struct {
	store SubscriptionsProvider
}

// NewSubscriptionsHandler creates a new SubscriptionsHandler.
func NewSubscriptionsHandler(s SubscriptionsProvider) *SubscriptionsHandler {
	return &SubscriptionsHandler{store: s}
}

// SubscribeInput is the request body for subscribing to a product.
type SubscribeInput struct {
	Body struct {
		Email            string `json:"email" doc:"Subscriber email address"`
		ProductID        string `json:"product_id" doc:"Storefront product identifier"`
		TelegramUsername string `json:"telegram_username,omitempty" doc:"Optional Telegram username for chat notifications"`
	}
}

// SubscribeOutput is the response body for a subscribe request.
type SubscribeOutput struct {
	Body struct {
		Status       string              `json:"status" example:"subscribed" doc:"subscribed or reactivated"`
		Subscription domain.Subscription `json:"subscription"`
	}
}

// UnsubscribeInput is the request body for unsubscribing from a product.
type UnsubscribeInput struct {
	Body struct {
		Email     string `json:"email" doc:"Subscriber email address"`
		ProductID string `json:"product_id" doc:"Storefront product identifier"`
	}
}

// UnsubscribeOutput is the response body for an unsubscribe request.
type UnsubscribeOutput struct {
	Body StatusResponse
}

// ListSubscriptionsInput is the request path for listing a subscriber's
// active subscriptions.
type ListSubscriptionsInput struct {
	Email string `path:"email" doc:"Subscriber email address"`
}

// ListSubscriptionsOutput is the response body for a subscriber's
// active subscriptions.
type ListSubscriptionsOutput struct {
	Body []domain.SubscriptionWithProduct
}

// validateEmail returns the normalized address, or an error for input that
// is not a plain single address.
func validateEmail(raw string) (string, error) {
	normalized := domain.NormalizeEmail(raw)
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", errors.New("invalid email address")
	}
	return normalized, nil
}

// normalizeTelegramUsername strips a leading @ and lowercases.
func normalizeTelegramUsername(raw string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "@"))
}

// Subscribe creates an active subscription, or reactivates a previously
// cancelled one for the same (email, product) pair.
func (h *SubscriptionsHandler) Subscribe(
	ctx context.Context,
	input *SubscribeInput,
) (*SubscribeOutput, error) {
	email, err := validateEmail(input.Body.Email)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid email address: " + input.Body.Email)
	}

	if _, err := h.store.GetProduct(ctx, input.Body.ProductID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("product not found: " + input.Body.ProductID)
		}
		return nil, huma.Error500InternalServerError("checking product failed: " + err.Error())
	}

	existing, err := h.store.GetSubscription(ctx, email, input.Body.ProductID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sub := &domain.Subscription{
			Email:            email,
			ProductID:        input.Body.ProductID,
			TelegramUsername: normalizeTelegramUsername(input.Body.TelegramUsername),
		}
		if err := h.store.CreateSubscription(ctx, sub); err != nil {
			return nil, huma.Error500InternalServerError("creating subscription failed: " + err.Error())
		}

		resp := &SubscribeOutput{}
		resp.Body.Status = "subscribed"
		resp.Body.Subscription = *sub
		return resp, nil

	case err != nil:
		return nil, huma.Error500InternalServerError("checking subscription failed: " + err.Error())

	case existing.IsActive:
		return nil, huma.Error409Conflict("already subscribed to this product")

	default:
		if err := h.store.SetSubscriptionActive(ctx, email, input.Body.ProductID, true); err != nil {
			return nil, huma.Error500InternalServerError("reactivating subscription failed: " + err.Error())
		}
		existing.IsActive = true

		resp := &SubscribeOutput{}
		resp.Body.Status = "reactivated"
		resp.Body.Subscription = *existing
		return resp, nil
	}
}

// Unsubscribe deactivates an active subscription. The row is kept so a
// later re-subscribe restores it.
func (h *SubscriptionsHandler) Unsubscribe(
	ctx context.Context,
	input *UnsubscribeInput,
) (*UnsubscribeOutput, error) {
	email, err := validateEmail(input.Body.Email)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid email address: " + input.Body.Email)
	}

	existing, err := h.store.GetSubscription(ctx, email, input.Body.ProductID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, huma.Error404NotFound("subscription not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("checking subscription failed: " + err.Error())
	}
	if !existing.IsActive {
		return nil, huma.Error404NotFound("subscription not found")
	}

	if err := h.store.SetSubscriptionActive(ctx, email, input.Body.ProductID, false); err != nil {
		return nil, huma.Error500InternalServerError("cancelling subscription failed: " + err.Error())
	}

	resp := &UnsubscribeOutput{}
	resp.Body.Status = "unsubscribed"
	return resp, nil
}

// ListSubscriptions returns a subscriber's active subscriptions with the
// current state of each product.
func (h *SubscriptionsHandler) ListSubscriptions(
	ctx context.Context,
	input *ListSubscriptionsInput,
) (*ListSubscriptionsOutput, error) {
	email, err := validateEmail(input.Email)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid email address: " + input.Email)
	}

	subs, err := h.store.ListSubscriptionsByEmail(ctx, email)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing subscriptions failed: " + err.Error())
	}

	out := make([]domain.SubscriptionWithProduct, 0, len(subs))
	for i := range subs {
		p, err := h.store.GetProduct(ctx, subs[i].ProductID)
		if err != nil {
			// Product rows are never deleted; treat a miss as transient
			// and leave the product zero-valued.
			out = append(out, domain.SubscriptionWithProduct{Subscription: subs[i]})
			continue
		}
		out = append(out, domain.SubscriptionWithProduct{
			Subscription: subs[i],
			Product:      *p,
		})
	}

	return &ListSubscriptionsOutput{Body: out}, nil
}

// RegisterSubscriptionRoutes registers subscription endpoints with the Huma API.
func RegisterSubscriptionRoutes(api huma.API, h *SubscriptionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "subscribe",
		Method:        http.MethodPost,
		Path:          "/api/v1/subscriptions",
		Summary:       "Subscribe to restock alerts",
		Description:   "Creates an active subscription for a product, or reactivates a cancelled one.",
		Tags:          []string{"subscriptions"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusInternalServerError,
		},
	}, h.Subscribe)

	huma.Register(api, huma.Operation{
		OperationID: "unsubscribe",
		Method:      http.MethodPost,
		Path:        "/api/v1/subscriptions/unsubscribe",
		Summary:     "Unsubscribe from restock alerts",
		Description: "Deactivates an active subscription without deleting its history.",
		Tags:        []string{"subscriptions"},
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusNotFound,
			http.StatusInternalServerError,
		},
	}, h.Unsubscribe)

	huma.Register(api, huma.Operation{
		OperationID: "list-subscriptions",
		Method:      http.MethodGet,
		Path:        "/api/v1/subscriptions/{email}",
		Summary:     "List a subscriber's active subscriptions",
		Description: "Returns all active subscriptions for an email address with current product state.",
		Tags:        []string{"subscriptions"},
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.ListSubscriptions)
}
