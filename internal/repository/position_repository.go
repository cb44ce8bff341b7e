package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

// PositionRepository provides data access for the position snapshot table.
// The snapshot holds the last-known holdings per portfolio and doubles as the
// fallback position source while the broker endpoint is in rate-limit cooldown.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new PositionRepository with the provided database connection.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// List retrieves the stored position snapshot for a portfolio.
func (r *PositionRepository) List(portfolioID string) ([]model.Position, error) {
	query := `SELECT symbol, quantity, average_price, current_price, market_value
		FROM position
		WHERE portfolio_id = ?
		ORDER BY symbol ASC`

	rows, err := r.db.Query(query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query position table: %w", err)
	}
	defer rows.Close()

	positions := []model.Position{}
	for rows.Next() {
		var p model.Position
		if err := rows.Scan(&p.Symbol, &p.Quantity, &p.AveragePrice, &p.CurrentPrice, &p.MarketValue); err != nil {
			return nil, fmt.Errorf("failed to scan position row: %w", err)
		}
		positions = append(positions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating position table: %w", err)
	}

	return positions, nil
}

// ReplaceAll replaces a portfolio's snapshot with freshly fetched positions.
// The delete and inserts run in one transaction so a failed refresh never
// leaves a half-written snapshot behind.
func (r *PositionRepository) ReplaceAll(ctx context.Context, portfolioID string, positions []model.Position) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM position WHERE portfolio_id = ?`, portfolioID); err != nil {
		return fmt.Errorf("failed to clear position snapshot: %w", err)
	}

	insert := `INSERT INTO position (id, portfolio_id, symbol, quantity, average_price, current_price, market_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range positions {
		_, err := tx.ExecContext(ctx, insert,
			uuid.NewString(), portfolioID, p.Symbol, p.Quantity, p.AveragePrice, p.CurrentPrice, p.Value())
		if err != nil {
			return fmt.Errorf("failed to insert position %s: %w", p.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit position snapshot: %w", err)
	}
	return nil
}
