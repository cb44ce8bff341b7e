package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/broker"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
)

// PositionService is the position-source boundary. It fetches live positions
// from the broker when a credential is configured, refreshing the stored
// snapshot on success, and serves the last-known snapshot otherwise.
//
// A 429 from the broker starts a per-user cooldown: until it expires no live
// fetch is attempted and the snapshot is served instead, so repeated
// user-triggered syncs fail fast without re-hitting the limited endpoint.
// The cooldown map is process-wide; concurrent writers overwrite
// last-write-wins, which is harmless for idempotent cooldown stamps.
type PositionService struct {
	positionRepo   *repository.PositionRepository
	credentialRepo *repository.CredentialRepository
	client         broker.Client

	mu        sync.Mutex
	cooldowns map[string]time.Time
}

// NewPositionService creates a new PositionService. credentialRepo and client
// may be nil, in which case positions come from the stored snapshot only.
func NewPositionService(positionRepo *repository.PositionRepository, credentialRepo *repository.CredentialRepository, client broker.Client) *PositionService {
	return &PositionService{
		positionRepo:   positionRepo,
		credentialRepo: credentialRepo,
		client:         client,
		cooldowns:      make(map[string]time.Time),
	}
}

// List returns the current positions for a portfolio. Live broker data is
// preferred; the stored snapshot is the fallback when live sync is disabled,
// the user has no credential, or the broker endpoint is in cooldown. When the
// broker is rate limited and no snapshot exists, the rate-limit condition is
// surfaced so the caller can report a retry delay.
func (s *PositionService) List(ctx context.Context, userID, portfolioID string) ([]model.Position, error) {
	if s.client == nil || s.credentialRepo == nil {
		return s.positionRepo.List(portfolioID)
	}

	if remaining, active := s.CooldownRemaining(userID); active {
		return s.snapshotOrRateLimited(portfolioID, remaining)
	}

	apiKey, err := s.credentialRepo.Get(userID)
	if errors.Is(err, apperrors.ErrCredentialNotFound) {
		return s.positionRepo.List(portfolioID)
	}
	if err != nil {
		return nil, err
	}

	positions, err := s.client.FetchPositions(ctx, apiKey)
	if err != nil {
		var rateLimited *apperrors.RateLimitedError
		if errors.As(err, &rateLimited) {
			s.startCooldown(userID, rateLimited.RetryAfter)
			log.Printf("broker rate limited for user %s, cooling down %s", userID, rateLimited.RetryAfter)
			return s.snapshotOrRateLimited(portfolioID, rateLimited.RetryAfter)
		}
		return nil, err
	}

	// Refresh the snapshot so the next cooldown window has current data.
	if err := s.positionRepo.ReplaceAll(ctx, portfolioID, positions); err != nil {
		log.Printf("failed to refresh position snapshot for portfolio %s: %v", portfolioID, err)
	}

	return positions, nil
}

// CooldownRemaining reports whether the user's broker endpoint is in
// rate-limit cooldown and for how much longer.
func (s *PositionService) CooldownRemaining(userID string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.cooldowns[userID]
	if !ok {
		return 0, false
	}
	remaining := time.Until(until)
	if remaining <= 0 {
		delete(s.cooldowns, userID)
		return 0, false
	}
	return remaining, true
}

func (s *PositionService) startCooldown(userID string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooldowns[userID] = time.Now().Add(duration)
}

// snapshotOrRateLimited serves the stored snapshot during a cooldown window,
// surfacing the rate-limit condition only when there is no snapshot to fall
// back on.
func (s *PositionService) snapshotOrRateLimited(portfolioID string, retryAfter time.Duration) ([]model.Position, error) {
	positions, err := s.positionRepo.List(portfolioID)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, &apperrors.RateLimitedError{RetryAfter: retryAfter}
	}
	return positions, nil
}
