package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
)

// credentialTTL bounds how old a stored fernet token may be before decryption
// refuses it. Credentials are rewritten on every update, so a generous bound
// only guards against stale rows surviving a long-dead account.
const credentialTTL = 365 * 24 * time.Hour

// CredentialRepository stores broker API keys fernet-encrypted at rest.
type CredentialRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewCredentialRepository creates a CredentialRepository using the given
// base64-encoded fernet key.
func NewCredentialRepository(db *sql.DB, encodedKey string) (*CredentialRepository, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &CredentialRepository{db: db, key: key}, nil
}

// Set encrypts and stores the broker API key for a user, replacing any
// existing credential.
func (r *CredentialRepository) Set(ctx context.Context, userID, apiKey string) error {
	token, err := fernet.EncryptAndSign([]byte(apiKey), r.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO broker_credential (user_id, token, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, userID, string(token), now, now); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Get decrypts and returns the broker API key for a user.
func (r *CredentialRepository) Get(userID string) (string, error) {
	var token string
	err := r.db.QueryRow(`SELECT token FROM broker_credential WHERE user_id = ?`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query credential: %w", err)
	}

	apiKey := fernet.VerifyAndDecrypt([]byte(token), credentialTTL, []*fernet.Key{r.key})
	if apiKey == nil {
		return "", fmt.Errorf("failed to decrypt credential for user %s", userID)
	}
	return string(apiKey), nil
}
