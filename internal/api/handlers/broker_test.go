package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/testutil"
)

func putCredential(t *testing.T, handler *BrokerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/api/broker/credential", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.SetCredential(w, req)
	return w
}

func TestBrokerHandler_SetCredential(t *testing.T) {
	t.Run("stores a valid credential", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		credentialService := testutil.NewTestCredentialService(t, db)
		handler := NewBrokerHandler(credentialService)

		userID := testutil.MakeID()
		w := putCredential(t, handler, `{"userId": "`+userID+`", "apiKey": "broker-api-key"}`)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		if !credentialService.Exists(userID) {
			t.Error("Expected credential to be stored")
		}
	})

	t.Run("rejects a missing apiKey", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewBrokerHandler(testutil.NewTestCredentialService(t, db))

		w := putCredential(t, handler, `{"userId": "`+testutil.MakeID()+`"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an invalid userId", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewBrokerHandler(testutil.NewTestCredentialService(t, db))

		w := putCredential(t, handler, `{"userId": "nope", "apiKey": "broker-api-key"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 503 when credential storage is not configured", func(t *testing.T) {
		handler := NewBrokerHandler(service.NewCredentialService(nil))

		w := putCredential(t, handler, `{"userId": "`+testutil.MakeID()+`", "apiKey": "broker-api-key"}`)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})
}
