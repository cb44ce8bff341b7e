package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/broker"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/divdata"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/provider"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
)

func NewTestReconcilerService(t *testing.T, db *sql.DB) *service.ReconcilerService {
	t.Helper()

	recordRepo := repository.NewDividendRecordRepository(db)

	return service.NewReconcilerService(recordRepo)
}

func NewTestCalculatorService(t *testing.T, providers ...provider.Client) *service.CalculatorService {
	t.Helper()

	resolver := divdata.NewResolver(providers)

	return service.NewCalculatorService(resolver)
}

func NewTestPositionService(t *testing.T, db *sql.DB, client broker.Client) *service.PositionService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)

	var credentialRepo *repository.CredentialRepository
	if client != nil {
		var err error
		credentialRepo, err = repository.NewCredentialRepository(db, MakeFernetKey())
		if err != nil {
			t.Fatalf("Failed to create credential repository: %v", err)
		}
	}

	return service.NewPositionService(
		positionRepo,
		credentialRepo,
		client,
	)
}

func NewTestDividendService(t *testing.T, db *sql.DB, providers ...provider.Client) *service.DividendService {
	t.Helper()

	recordRepo := repository.NewDividendRecordRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	calculator := NewTestCalculatorService(t, providers...)

	return service.NewDividendService(
		recordRepo,
		positionRepo,
		calculator,
	)
}

// NewTestSyncService wires a full sync pipeline against the test database.
// Positions come from the snapshot table only; seed them with the position
// builder before running.
func NewTestSyncService(t *testing.T, db *sql.DB, providers ...provider.Client) *service.SyncService {
	t.Helper()

	positions := NewTestPositionService(t, db, nil)
	calculator := NewTestCalculatorService(t, providers...)
	reconciler := NewTestReconcilerService(t, db)
	jobRepo := repository.NewJobRepository(db)

	return service.NewSyncService(
		positions,
		calculator,
		reconciler,
		jobRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestCredentialService(t *testing.T, db *sql.DB) *service.CredentialService {
	t.Helper()

	credentialRepo, err := repository.NewCredentialRepository(db, MakeFernetKey())
	if err != nil {
		t.Fatalf("Failed to create credential repository: %v", err)
	}

	return service.NewCredentialService(credentialRepo)
}

// MakeID generates a unique identifier for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeFernetKey returns a fixed valid fernet key for credential tests.
// 32 zero bytes, base64url encoded.
func MakeFernetKey() string {
	return "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
}
