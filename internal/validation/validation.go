package validation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/request"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidateSyncRequest validates a sync trigger request. A runAll request
// needs no IDs; a single-portfolio request needs both user and portfolio IDs.
func ValidateSyncRequest(req request.SyncRequest) error {
	if req.RunAll {
		return nil
	}
	if req.UserID == "" || req.PortfolioID == "" {
		return fmt.Errorf("%w: userId and portfolioId are required unless runAll is set", apperrors.ErrMissingRequiredField)
	}
	if err := ValidateUUID(req.UserID); err != nil {
		return err
	}
	return ValidateUUID(req.PortfolioID)
}

// ValidateCredentialRequest validates a broker credential upsert request.
func ValidateCredentialRequest(req request.CredentialRequest) error {
	if req.APIKey == "" {
		return fmt.Errorf("%w: apiKey is required", apperrors.ErrMissingRequiredField)
	}
	return ValidateUUID(req.UserID)
}
