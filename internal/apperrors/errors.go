package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrDividendRecordNotFound indicates that a dividend record with the given key does not exist.
	ErrDividendRecordNotFound = errors.New("dividend record not found")

	// ErrSyncJobNotFound indicates that a sync job with the given ID does not exist.
	ErrSyncJobNotFound = errors.New("sync job not found")

	// ErrCredentialNotFound indicates no broker credential has been stored for the user.
	ErrCredentialNotFound = errors.New("broker credential not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// ErrRateLimited is the distinguished condition for an HTTP 429 from the
// position-sync boundary. It is surfaced to the caller with a suggested
// retry delay and triggers a per-user cooldown so repeated syncs fail fast
// without re-hitting the limited endpoint. Match with errors.Is; unwrap to
// *RateLimitedError for the delay.
var ErrRateLimited = errors.New("rate limited")

// RateLimitedError wraps ErrRateLimited with the delay the remote endpoint
// (or the local cooldown cache) asks the caller to wait before retrying.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}

// Operation failure errors represent system-level failures when retrieving
// or processing data. These errors indicate that an operation failed, but
// not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividend records")
	ErrFailedToRetrievePositions = errors.New("failed to retrieve positions")
	ErrFailedToRetrieveJobs      = errors.New("failed to retrieve sync jobs")
	ErrFailedToRunSync           = errors.New("failed to run dividend sync")
	ErrFailedToStoreCredential   = errors.New("failed to store broker credential")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
)
