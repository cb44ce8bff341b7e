package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Dividend record table
		CREATE TABLE dividend_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			portfolio_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			annual_dividend FLOAT NOT NULL,
			quarterly_dividend FLOAT NOT NULL,
			dividend_yield FLOAT NOT NULL,
			frequency VARCHAR(11) NOT NULL,
			next_ex_date DATE,
			payment_date DATE,
			is_etf BOOLEAN NOT NULL DEFAULT FALSE,
			shares_owned FLOAT NOT NULL,
			estimated_annual_income FLOAT NOT NULL,
			detection_source VARCHAR(20) NOT NULL,
			detected_at DATETIME NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_dividend_record UNIQUE (user_id, portfolio_id, symbol)
		);

		CREATE INDEX idx_dividend_record_portfolio ON dividend_record (user_id, portfolio_id, is_active);

		-- Position snapshot table
		CREATE TABLE position (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			portfolio_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			quantity FLOAT NOT NULL,
			average_price FLOAT NOT NULL,
			current_price FLOAT NOT NULL,
			market_value FLOAT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_position UNIQUE (portfolio_id, symbol)
		);

		-- Sync job table
		CREATE TABLE sync_job (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			portfolio_id VARCHAR(36) NOT NULL,
			status VARCHAR(9) NOT NULL DEFAULT 'pending',
			last_run_at DATETIME,
			next_run_at DATETIME,
			last_error TEXT,
			stats TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_sync_job UNIQUE (user_id, portfolio_id)
		);

		-- Broker credential table
		CREATE TABLE broker_credential (
			user_id VARCHAR(36) NOT NULL PRIMARY KEY,
			token TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
