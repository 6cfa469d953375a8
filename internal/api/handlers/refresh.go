package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mkhandekar/restock-tracker/internal/engine"
	"github.com/mkhandekar/restock-tracker/internal/shop"
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// Reconciler defines the interface for triggering a reconciliation pass.
type Reconciler interface {
	Reconcile(ctx context.Context) (*domain.ReconcileResult, error)
}

// RefreshHandler handles manual reconcile trigger requests.
type RefreshHandler struct {
	reconciler Reconciler
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r Reconciler) *RefreshHandler {
	return &RefreshHandler{reconciler: r}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body domain.ReconcileResult
}

// Refresh triggers a full reconciliation pass and returns its summary.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	result, err := h.reconciler.Reconcile(ctx)
	if errors.Is(err, engine.ErrPassInProgress) {
		return nil, huma.Error409Conflict("a reconciliation pass is already running")
	}
	if errors.Is(err, shop.ErrSourceUnavailable) {
		return nil, huma.Error502BadGateway("storefront unavailable: " + err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("reconcile failed: " + err.Error())
	}

	return &RefreshOutput{Body: *result}, nil
}

// RegisterRefreshRoutes registers the manual refresh endpoint with the Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Trigger a reconciliation pass",
		Description: "Fetches the storefront snapshot, updates stored products, and " +
			"dispatches restock notifications for detected transitions.",
		Tags:   []string{"reconcile"},
		Errors: []int{http.StatusConflict, http.StatusBadGateway, http.StatusInternalServerError},
	}, h.Refresh)
}
