package handlers

import (
	"net/http"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/request"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/response"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/validation"
)

// BrokerHandler handles HTTP requests for broker credential management.
type BrokerHandler struct {
	credentialService *service.CredentialService
}

// NewBrokerHandler creates a new BrokerHandler with the provided service dependency.
func NewBrokerHandler(credentialService *service.CredentialService) *BrokerHandler {
	return &BrokerHandler{credentialService: credentialService}
}

// SetCredential handles PUT requests to store a user's broker API key.
// The key is encrypted at rest; it is never returned by any endpoint.
//
// Endpoint: PUT /api/broker/credential
// Request Body: CredentialRequest (userId, apiKey)
// Response: 204 No Content
// Error: 400 Bad Request if validation fails
// Error: 503 Service Unavailable if credential storage is not configured
// Error: 500 Internal Server Error if storage fails
func (h *BrokerHandler) SetCredential(w http.ResponseWriter, r *http.Request) {
	if !h.credentialService.Enabled() {
		response.RespondError(w, http.StatusServiceUnavailable, "broker credential storage is not configured", "")
		return
	}

	req, err := parseJSON[request.CredentialRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCredentialRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.credentialService.Store(r.Context(), req.UserID, req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStoreCredential.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
