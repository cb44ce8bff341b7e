package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/testutil"
)

// storeCredential seeds an encrypted broker API key for the user, using the
// same key material the test position service decrypts with.
func storeCredential(t *testing.T, db *sql.DB, userID string) {
	t.Helper()

	credentialRepo, err := repository.NewCredentialRepository(db, testutil.MakeFernetKey())
	if err != nil {
		t.Fatalf("Failed to create credential repository: %v", err)
	}
	if err := credentialRepo.Set(context.Background(), userID, "broker-api-key"); err != nil {
		t.Fatalf("Failed to store credential: %v", err)
	}
}

// TestPositionService_List tests the position-source fallback chain.
//
// WHY: Positions feed everything downstream. The service must prefer live
// broker data, survive rate limiting by serving the stored snapshot, and only
// surface the rate-limit condition when there is truly nothing to serve.
func TestPositionService_List(t *testing.T) {
	userID := testutil.MakeID()
	portfolioID := testutil.MakeID()

	t.Run("serves the stored snapshot when live sync is disabled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db, nil)

		testutil.CreatePosition(t, db, portfolioID, "AAPL", 10)

		positions, err := svc.List(context.Background(), userID, portfolioID)
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if len(positions) != 1 || positions[0].Symbol != "AAPL" {
			t.Errorf("Expected snapshot position AAPL, got %+v", positions)
		}
	})

	t.Run("serves the snapshot when the user has no credential", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		broker := &testutil.StubBroker{}
		svc := testutil.NewTestPositionService(t, db, broker)

		testutil.CreatePosition(t, db, portfolioID, "KO", 50)

		positions, err := svc.List(context.Background(), userID, portfolioID)
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if len(positions) != 1 || positions[0].Symbol != "KO" {
			t.Errorf("Expected snapshot position KO, got %+v", positions)
		}
		if broker.FetchCount != 0 {
			t.Errorf("Expected no live fetch without a credential, got %d", broker.FetchCount)
		}
	})

	t.Run("prefers live broker data and refreshes the snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		broker := &testutil.StubBroker{
			Positions: []model.Position{
				{Symbol: "AAPL_US_EQ", Quantity: 15, CurrentPrice: 190},
			},
		}
		svc := testutil.NewTestPositionService(t, db, broker)

		storeCredential(t, db, userID)

		// Stale snapshot that the live fetch should replace
		testutil.CreatePosition(t, db, portfolioID, "KO", 50)

		positions, err := svc.List(context.Background(), userID, portfolioID)
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if len(positions) != 1 || positions[0].Symbol != "AAPL_US_EQ" {
			t.Errorf("Expected live broker positions, got %+v", positions)
		}

		snapshot, err := repository.NewPositionRepository(db).List(portfolioID)
		if err != nil {
			t.Fatalf("Failed to read snapshot: %v", err)
		}
		if len(snapshot) != 1 || snapshot[0].Symbol != "AAPL_US_EQ" {
			t.Errorf("Expected snapshot refreshed with live data, got %+v", snapshot)
		}
	})

	t.Run("rate limit falls back to the snapshot and starts a cooldown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		broker := &testutil.StubBroker{
			Err: &apperrors.RateLimitedError{RetryAfter: 45 * time.Second},
		}
		svc := testutil.NewTestPositionService(t, db, broker)

		storeCredential(t, db, userID)

		testutil.CreatePosition(t, db, portfolioID, "AAPL", 10)

		positions, err := svc.List(context.Background(), userID, portfolioID)
		if err != nil {
			t.Fatalf("Expected snapshot fallback, got error: %v", err)
		}
		if len(positions) != 1 || positions[0].Symbol != "AAPL" {
			t.Errorf("Expected snapshot position AAPL, got %+v", positions)
		}

		remaining, active := svc.CooldownRemaining(userID)
		if !active {
			t.Fatal("Expected an active cooldown after a 429")
		}
		if remaining <= 0 || remaining > 45*time.Second {
			t.Errorf("Expected cooldown remaining within (0, 45s], got %s", remaining)
		}

		// Repeated calls serve the snapshot without touching the broker again
		if _, err := svc.List(context.Background(), userID, portfolioID); err != nil {
			t.Fatalf("List() during cooldown returned unexpected error: %v", err)
		}
		if broker.FetchCount != 1 {
			t.Errorf("Expected exactly 1 live fetch, got %d", broker.FetchCount)
		}
	})

	t.Run("surfaces the rate limit when no snapshot exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		broker := &testutil.StubBroker{
			Err: &apperrors.RateLimitedError{RetryAfter: 30 * time.Second},
		}
		svc := testutil.NewTestPositionService(t, db, broker)

		storeCredential(t, db, userID)

		_, err := svc.List(context.Background(), userID, portfolioID)

		var rateLimited *apperrors.RateLimitedError
		if !errors.As(err, &rateLimited) {
			t.Fatalf("Expected RateLimitedError, got %v", err)
		}
		if rateLimited.RetryAfter != 30*time.Second {
			t.Errorf("Expected retry-after 30s, got %s", rateLimited.RetryAfter)
		}
	})

	t.Run("non-rate-limit broker errors are returned as-is", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		brokerErr := errors.New("broker unreachable")
		broker := &testutil.StubBroker{Err: brokerErr}
		svc := testutil.NewTestPositionService(t, db, broker)

		storeCredential(t, db, userID)

		if _, err := svc.List(context.Background(), userID, portfolioID); !errors.Is(err, brokerErr) {
			t.Errorf("Expected broker error passthrough, got %v", err)
		}
	})
}

// TestPositionService_CooldownRemaining tests cooldown bookkeeping.
func TestPositionService_CooldownRemaining(t *testing.T) {
	t.Run("no cooldown without a prior rate limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db, nil)

		if _, active := svc.CooldownRemaining(testutil.MakeID()); active {
			t.Error("Expected no active cooldown for an unknown user")
		}
	})
}
