package service

import (
	"database/sql"
	"fmt"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/database"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// VersionInfo describes the running application and database schema versions.
type VersionInfo struct {
	AppVersion    string `json:"appVersion"`
	SchemaVersion int64  `json:"schemaVersion"`
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and current schema version.
func (s *SystemService) CheckVersion() (VersionInfo, error) {
	schemaVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}

	return VersionInfo{
		AppVersion:    version.Version,
		SchemaVersion: schemaVersion,
	}, nil
}
