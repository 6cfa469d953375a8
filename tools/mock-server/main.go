// Package main implements a mock storefront API server for local development.
// It serves canned product snapshots from a JSON fixture to simulate the
// storefront catalog endpoint without hitting the real shop.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

type catalogResponse struct {
	Data []productRecord `json:"data"`
}

type productRecord struct {
	ID                string          `json:"_id"`
	Name              string          `json:"name"`
	Alias             string          `json:"alias"`
	Brand             string          `json:"brand,omitempty"`
	Price             float64         `json:"price"`
	InventoryQuantity int             `json:"inventory_quantity"`
	Images            json.RawMessage `json:"images,omitempty"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products_response.json", "path to products fixture")
	simulateRestocks := flag.Bool("simulate-restocks", false, "alternate out-of-stock items back in stock on every other request")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Data))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/1/entity/ms.products", productsHandler(logger, fixture, *simulateRestocks))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock storefront server", "addr", addr, "simulate_restocks", *simulateRestocks)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*catalogResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// productsHandler serves the fixture snapshot. With restock simulation on,
// every other request flips zero-quantity items back in stock so a polling
// tracker sees out-of-stock to in-stock transitions.
func productsHandler(logger *slog.Logger, fixture *catalogResponse, simulateRestocks bool) http.HandlerFunc {
	var requests atomic.Int64

	return func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)

		limit := len(fixture.Data)
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v < limit {
				limit = v
			}
		}

		records := make([]productRecord, limit)
		copy(records, fixture.Data[:limit])

		restocked := 0
		if simulateRestocks && n%2 == 0 {
			for i := range records {
				if records[i].InventoryQuantity == 0 {
					records[i].InventoryQuantity = 5
					restocked++
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(catalogResponse{Data: records})
		logger.Info("snapshot served", "returned", len(records), "restocked", restocked, "request", n)
	}
}
