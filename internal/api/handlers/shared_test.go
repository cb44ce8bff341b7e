package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/request"
)

func TestParseJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"runAll": true}`))

		parsed, err := parseJSON[request.SyncRequest](req)
		if err != nil {
			t.Fatalf("parseJSON() returned unexpected error: %v", err)
		}
		if !parsed.RunAll {
			t.Error("Expected runAll to be decoded")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{broken`))

		if _, err := parseJSON[request.SyncRequest](req); err == nil {
			t.Error("Expected error for malformed JSON, got nil")
		}
	})
}
