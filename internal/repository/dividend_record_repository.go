package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

// recordColumns is the column list for the dividend_record table. Order must
// match scanRecord.
const recordColumns = `id, user_id, portfolio_id, symbol, annual_dividend, quarterly_dividend,
	dividend_yield, frequency, next_ex_date, payment_date, is_etf, shares_owned,
	estimated_annual_income, detection_source, detected_at, is_active, created_at, updated_at`

// DividendRecordRepository provides data access for the dividend_record
// table, the persisted snapshot the reconciler diffs against.
type DividendRecordRepository struct {
	db *sql.DB
}

// NewDividendRecordRepository creates a new DividendRecordRepository with the provided database connection.
func NewDividendRecordRepository(db *sql.DB) *DividendRecordRepository {
	return &DividendRecordRepository{db: db}
}

// ListByPortfolio retrieves every dividend record for a portfolio, active and
// inactive. The reconciler needs inactive rows too so a reappearing symbol is
// reactivated instead of violating the unique key with a fresh insert.
func (r *DividendRecordRepository) ListByPortfolio(userID, portfolioID string) ([]model.DividendRecord, error) {
	query := `SELECT ` + recordColumns + `
		FROM dividend_record
		WHERE user_id = ? AND portfolio_id = ?
		ORDER BY symbol ASC`

	return r.queryRecords(query, userID, portfolioID)
}

// ListActive retrieves the active dividend records for a portfolio.
func (r *DividendRecordRepository) ListActive(userID, portfolioID string) ([]model.DividendRecord, error) {
	query := `SELECT ` + recordColumns + `
		FROM dividend_record
		WHERE user_id = ? AND portfolio_id = ? AND is_active = 1
		ORDER BY estimated_annual_income DESC`

	return r.queryRecords(query, userID, portfolioID)
}

// InsertMany inserts a batch of dividend records in a single statement.
func (r *DividendRecordRepository) InsertMany(ctx context.Context, records []model.DividendRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `INSERT INTO dividend_record (` + recordColumns + `) VALUES `
	args := make([]any, 0, len(records)*18)
	for i, record := range records {
		if i > 0 {
			query += ", "
		}
		query += "(" + placeholders(18) + ")"
		args = append(args, recordArgs(record)...)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert dividend records: %w", err)
	}
	return nil
}

// Upsert writes a dividend record, updating the existing row on the
// (user_id, portfolio_id, symbol) unique key. The conflict key is the
// idempotency guarantee: re-running a reconciliation with identical input
// leaves the stored values unchanged.
func (r *DividendRecordRepository) Upsert(ctx context.Context, record model.DividendRecord) error {
	query := `INSERT INTO dividend_record (` + recordColumns + `)
		VALUES (` + placeholders(18) + `)
		ON CONFLICT (user_id, portfolio_id, symbol) DO UPDATE SET
			annual_dividend = excluded.annual_dividend,
			quarterly_dividend = excluded.quarterly_dividend,
			dividend_yield = excluded.dividend_yield,
			frequency = excluded.frequency,
			next_ex_date = excluded.next_ex_date,
			payment_date = excluded.payment_date,
			is_etf = excluded.is_etf,
			shares_owned = excluded.shares_owned,
			estimated_annual_income = excluded.estimated_annual_income,
			detection_source = excluded.detection_source,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, recordArgs(record)...); err != nil {
		return fmt.Errorf("failed to upsert dividend record for %s: %w", record.Symbol, err)
	}
	return nil
}

// Deactivate marks active records inactive for every symbol not in
// keepSymbols, i.e. positions that were sold or removed. Records are never
// deleted. Returns the number of rows deactivated.
func (r *DividendRecordRepository) Deactivate(ctx context.Context, userID, portfolioID string, keepSymbols []string) (int64, error) {
	query := `UPDATE dividend_record
		SET is_active = 0, updated_at = ?
		WHERE user_id = ? AND portfolio_id = ? AND is_active = 1`
	args := []any{time.Now().UTC().Format(time.RFC3339), userID, portfolioID}

	if len(keepSymbols) > 0 {
		query += ` AND symbol NOT IN (` + placeholders(len(keepSymbols)) + `)`
		for _, symbol := range keepSymbols {
			args = append(args, symbol)
		}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate dividend records: %w", err)
	}

	deactivated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deactivated records: %w", err)
	}
	return deactivated, nil
}

func (r *DividendRecordRepository) queryRecords(query string, args ...any) ([]model.DividendRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend_record table: %w", err)
	}
	defer rows.Close()

	records := []model.DividendRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend_record table: %w", err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (model.DividendRecord, error) {
	var record model.DividendRecord
	var nextExStr, paymentStr sql.NullString
	var detectedAtStr, createdAtStr, updatedAtStr string

	err := rows.Scan(
		&record.ID,
		&record.UserID,
		&record.PortfolioID,
		&record.Symbol,
		&record.AnnualDividend,
		&record.QuarterlyDividend,
		&record.DividendYield,
		&record.Frequency,
		&nextExStr,
		&paymentStr,
		&record.IsETF,
		&record.SharesOwned,
		&record.EstimatedAnnualIncome,
		&record.DetectionSource,
		&detectedAtStr,
		&record.IsActive,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return model.DividendRecord{}, fmt.Errorf("failed to scan dividend_record row: %w", err)
	}

	if nextExStr.Valid {
		nextEx, err := ParseTime(nextExStr.String)
		if err != nil {
			return model.DividendRecord{}, err
		}
		record.NextExDate = &nextEx
	}
	if paymentStr.Valid {
		payment, err := ParseTime(paymentStr.String)
		if err != nil {
			return model.DividendRecord{}, err
		}
		record.PaymentDate = &payment
	}

	record.DetectedAt, err = ParseTime(detectedAtStr)
	if err != nil || record.DetectedAt.IsZero() {
		return model.DividendRecord{}, fmt.Errorf("failed to parse detected_at: %w", err)
	}
	record.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.DividendRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	record.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.DividendRecord{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return record, nil
}

func recordArgs(record model.DividendRecord) []any {
	var nextEx, payment any
	if record.NextExDate != nil {
		nextEx = record.NextExDate.UTC().Format("2006-01-02")
	}
	if record.PaymentDate != nil {
		payment = record.PaymentDate.UTC().Format("2006-01-02")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return []any{
		record.ID,
		record.UserID,
		record.PortfolioID,
		record.Symbol,
		record.AnnualDividend,
		record.QuarterlyDividend,
		record.DividendYield,
		record.Frequency,
		nextEx,
		payment,
		record.IsETF,
		record.SharesOwned,
		record.EstimatedAnnualIncome,
		record.DetectionSource,
		record.DetectedAt.UTC().Format(time.RFC3339),
		record.IsActive,
		now,
		now,
	}
}
