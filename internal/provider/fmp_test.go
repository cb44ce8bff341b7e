package provider

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestFMPClient(server *httptest.Server) *FMPClient {
	client := NewFMPClient("test-key")
	client.baseURL = server.URL
	client.httpClient = server.Client()
	return client
}

// TestFMPClient_Dividends tests annualization of the FMP payment history.
//
// WHY: FMP returns raw payment history rather than an annual figure. Summing
// the wrong window or assuming four payments always exist misstates income
// for new or irregular payers.
func TestFMPClient_Dividends(t *testing.T) {
	t.Run("sums the last four payments as the annual amount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck // Test server response
			w.Write([]byte(`{
				"symbol": "KO",
				"historical": [
					{"date": "2025-06-13", "dividend": 0.51, "paymentDate": "2025-07-01"},
					{"date": "2025-03-14", "dividend": 0.51, "paymentDate": "2025-04-01"},
					{"date": "2024-11-29", "dividend": 0.485, "paymentDate": "2024-12-16"},
					{"date": "2024-09-13", "dividend": 0.485, "paymentDate": "2024-10-01"},
					{"date": "2024-06-14", "dividend": 0.485, "paymentDate": "2024-07-01"}
				]
			}`))
		}))
		defer server.Close()

		client := newTestFMPClient(server)

		quote, err := client.Dividends(context.Background(), "KO")
		if err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}
		if quote == nil {
			t.Fatal("Expected a quote, got nil")
		}

		if math.Abs(quote.AnnualDividend-1.99) > 1e-9 {
			t.Errorf("Expected annual dividend 1.99, got %v", quote.AnnualDividend)
		}
		if quote.PaymentDate == nil {
			t.Error("Expected payment date from the latest payment")
		}
	})

	t.Run("annualizes the latest payment when history is short", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck // Test server response
			w.Write([]byte(`{
				"symbol": "NEWCO",
				"historical": [
					{"date": "2025-06-13", "dividend": 0.25, "paymentDate": "2025-07-01"}
				]
			}`))
		}))
		defer server.Close()

		client := newTestFMPClient(server)

		quote, err := client.Dividends(context.Background(), "NEWCO")
		if err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}
		if quote == nil || quote.AnnualDividend != 1.00 {
			t.Fatalf("Expected annualized 1.00, got %+v", quote)
		}
	})

	t.Run("returns no data for an empty history", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck // Test server response
			w.Write([]byte(`{"symbol": "TSLA", "historical": []}`))
		}))
		defer server.Close()

		client := newTestFMPClient(server)

		quote, err := client.Dividends(context.Background(), "TSLA")
		if err != nil {
			t.Fatalf("Dividends() returned unexpected error: %v", err)
		}
		if quote != nil {
			t.Errorf("Expected nil quote for empty history, got %+v", quote)
		}
	})

	t.Run("returns an error for non-200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newTestFMPClient(server)

		if _, err := client.Dividends(context.Background(), "KO"); err == nil {
			t.Error("Expected error for 403 response, got nil")
		}
	})
}
