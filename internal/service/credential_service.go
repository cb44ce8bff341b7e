package service

import (
	"context"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
)

// CredentialService manages broker API credentials.
type CredentialService struct {
	credentialRepo *repository.CredentialRepository
}

// NewCredentialService creates a new CredentialService with the provided repository dependency.
func NewCredentialService(credentialRepo *repository.CredentialRepository) *CredentialService {
	return &CredentialService{credentialRepo: credentialRepo}
}

// Enabled reports whether credential storage is configured. It is false when
// the server runs without a fernet key.
func (s *CredentialService) Enabled() bool {
	return s.credentialRepo != nil
}

// Store encrypts and saves the broker API key for a user.
func (s *CredentialService) Store(ctx context.Context, userID, apiKey string) error {
	return s.credentialRepo.Set(ctx, userID, apiKey)
}

// Exists reports whether the user has a stored broker credential.
func (s *CredentialService) Exists(userID string) bool {
	if s.credentialRepo == nil {
		return false
	}
	_, err := s.credentialRepo.Get(userID)
	return err == nil
}
