package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *catalogResponse {
	t.Helper()
	path := filepath.Join("testdata", "products_response.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &resp
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Data) == 0 {
		t.Fatal("expected products in fixture")
	}
	for _, rec := range fixture.Data {
		if rec.ID == "" {
			t.Errorf("product %q missing _id", rec.Name)
		}
	}
}

func TestProductsHandler_ServesSnapshot(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := productsHandler(testLogger(), fixture, false)

	req := httptest.NewRequest(http.MethodGet, "/api/1/entity/ms.products", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp catalogResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != len(fixture.Data) {
		t.Errorf("returned=%d, want %d", len(resp.Data), len(fixture.Data))
	}
}

func TestProductsHandler_HonorsLimit(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := productsHandler(testLogger(), fixture, false)

	req := httptest.NewRequest(http.MethodGet, "/api/1/entity/ms.products?limit=2", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	var resp catalogResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("returned=%d, want 2", len(resp.Data))
	}
}

func TestProductsHandler_SimulatesRestocks(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := productsHandler(testLogger(), fixture, true)

	outOfStock := func(records []productRecord) int {
		n := 0
		for _, rec := range records {
			if rec.InventoryQuantity == 0 {
				n++
			}
		}
		return n
	}

	// First request serves the fixture unchanged.
	req := httptest.NewRequest(http.MethodGet, "/api/1/entity/ms.products", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	var first catalogResponse
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatalf("decoding first response: %v", err)
	}
	if got, want := outOfStock(first.Data), outOfStock(fixture.Data); got != want {
		t.Errorf("first request out-of-stock=%d, want %d", got, want)
	}

	// Second request flips zero-quantity items in stock.
	req = httptest.NewRequest(http.MethodGet, "/api/1/entity/ms.products", http.NoBody)
	w = httptest.NewRecorder()
	handler(w, req)

	var second catalogResponse
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("decoding second response: %v", err)
	}
	if got := outOfStock(second.Data); got != 0 {
		t.Errorf("second request out-of-stock=%d, want 0", got)
	}

	// The fixture itself must stay untouched between requests.
	if got, want := outOfStock(fixture.Data), 2; got != want {
		t.Errorf("fixture out-of-stock=%d, want %d", got, want)
	}
}
