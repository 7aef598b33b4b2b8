package findata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market_backend/internal/apperrors"
)

// newTestAdapter spins up a fake upstream and returns an adapter pointed at
// it.
func newTestAdapter(t *testing.T, h http.HandlerFunc) *Findata {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}
	return New(cfg, server.Client())
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestFindata_APIKeyInjection(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %q", r.URL.Query().Get("apikey"))
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %q", r.URL.Query().Get("symbol"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"result": {"symbol":"AAPL","name":"Apple Inc.","exchange":"NASDAQ","price":190.5,"change":1.2,"changesPercentage":0.63,"volume":1000,"datetime":"2024-01-02T21:00:00Z"}
		}`))
	})

	if _, err := adapter.GetStockQuote(context.Background(), "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindata_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		sentinel   *apperrors.AppError
	}{
		{"rate limited", http.StatusTooManyRequests, apperrors.ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrUpstreamUnauthorized},
		{"forbidden", http.StatusForbidden, apperrors.ErrUpstreamUnauthorized},
		{"bad request", http.StatusBadRequest, apperrors.ErrProvider},
		{"internal server error", http.StatusInternalServerError, apperrors.ErrProvider},
		{"service unavailable", http.StatusServiceUnavailable, apperrors.ErrProvider},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.statusCode)
			})

			_, err := adapter.GetStockQuote(context.Background(), "AAPL")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %s, got %v", tt.sentinel.Code, err)
			}
			if calls != 1 {
				t.Errorf("expected exactly 1 upstream call (no retries), got %d", calls)
			}
		})
	}
}

func TestFindata_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	adapter := New(cfg, server.Client())
	server.Close() // kill the upstream before calling

	_, err := adapter.GetStockQuote(context.Background(), "AAPL")
	if !errors.Is(err, apperrors.ErrUnavailable) {
		t.Errorf("expected UPSTREAM_UNAVAILABLE, got %v", err)
	}
}

func TestFindata_ContextCancellation(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := adapter.GetStockQuote(ctx, "AAPL")
	if !errors.Is(err, apperrors.ErrUnavailable) {
		t.Errorf("expected UPSTREAM_UNAVAILABLE on cancellation, got %v", err)
	}
}

func TestFindata_MalformedEnvelope(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{invalid json`))
	})

	_, err := adapter.GetStockQuote(context.Background(), "AAPL")
	if !errors.Is(err, apperrors.ErrBadUpstreamData) {
		t.Errorf("expected BAD_UPSTREAM_DATA, got %v", err)
	}
}
