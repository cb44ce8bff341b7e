package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

// PositionBuilder provides a fluent interface for seeding position snapshots.
//
// Example usage:
//
//	// Simple creation with defaults
//	position := testutil.NewPosition(portfolioID).Build(t, db)
//
//	// Customized position
//	position := testutil.NewPosition(portfolioID).
//	    WithSymbol("AAPL_US_EQ").
//	    WithQuantity(15).
//	    WithCurrentPrice(190).
//	    Build(t, db)
type PositionBuilder struct {
	ID           string
	PortfolioID  string
	Symbol       string
	Quantity     float64
	AveragePrice float64
	CurrentPrice float64
	MarketValue  float64
}

// NewPosition creates a PositionBuilder with sensible defaults.
func NewPosition(portfolioID string) *PositionBuilder {
	return &PositionBuilder{
		ID:           MakeID(),
		PortfolioID:  portfolioID,
		Symbol:       "AAPL",
		Quantity:     10,
		AveragePrice: 150,
		CurrentPrice: 190,
	}
}

// WithSymbol sets the raw broker ticker.
func (b *PositionBuilder) WithSymbol(symbol string) *PositionBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets the held quantity.
func (b *PositionBuilder) WithQuantity(quantity float64) *PositionBuilder {
	b.Quantity = quantity
	return b
}

// WithAveragePrice sets the average purchase price.
func (b *PositionBuilder) WithAveragePrice(price float64) *PositionBuilder {
	b.AveragePrice = price
	return b
}

// WithCurrentPrice sets the current market price.
func (b *PositionBuilder) WithCurrentPrice(price float64) *PositionBuilder {
	b.CurrentPrice = price
	return b
}

// WithMarketValue sets an explicit market value instead of the derived one.
func (b *PositionBuilder) WithMarketValue(value float64) *PositionBuilder {
	b.MarketValue = value
	return b
}

// Build inserts the position snapshot row and returns the model.
func (b *PositionBuilder) Build(t *testing.T, db *sql.DB) model.Position {
	t.Helper()

	value := b.MarketValue
	if value == 0 {
		value = b.Quantity * b.CurrentPrice
	}

	query := `
		INSERT INTO position (id, portfolio_id, symbol, quantity, average_price, current_price, market_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PortfolioID, b.Symbol, b.Quantity, b.AveragePrice, b.CurrentPrice, value)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return model.Position{
		Symbol:       b.Symbol,
		Quantity:     b.Quantity,
		AveragePrice: b.AveragePrice,
		CurrentPrice: b.CurrentPrice,
		MarketValue:  value,
	}
}

// DividendRecordBuilder provides a fluent interface for seeding dividend records.
//
// Example usage:
//
//	record := testutil.NewDividendRecord(userID, portfolioID, "KO").
//	    WithAnnualDividend(1.94).
//	    WithShares(50).
//	    Build(t, db)
type DividendRecordBuilder struct {
	ID              string
	UserID          string
	PortfolioID     string
	Symbol          string
	AnnualDividend  float64
	DividendYield   float64
	Frequency       string
	IsETF           bool
	SharesOwned     float64
	DetectionSource string
	IsActive        bool
}

// NewDividendRecord creates a DividendRecordBuilder with sensible defaults
// for an active quarterly payer.
func NewDividendRecord(userID, portfolioID, symbol string) *DividendRecordBuilder {
	return &DividendRecordBuilder{
		ID:              MakeID(),
		UserID:          userID,
		PortfolioID:     portfolioID,
		Symbol:          symbol,
		AnnualDividend:  1.00,
		DividendYield:   2.00,
		Frequency:       "quarterly",
		SharesOwned:     10,
		DetectionSource: "curated",
		IsActive:        true,
	}
}

// WithAnnualDividend sets the per-share annual dividend.
func (b *DividendRecordBuilder) WithAnnualDividend(amount float64) *DividendRecordBuilder {
	b.AnnualDividend = amount
	return b
}

// WithYield sets the dividend yield percentage.
func (b *DividendRecordBuilder) WithYield(yield float64) *DividendRecordBuilder {
	b.DividendYield = yield
	return b
}

// WithFrequency sets the payout frequency.
func (b *DividendRecordBuilder) WithFrequency(frequency string) *DividendRecordBuilder {
	b.Frequency = frequency
	return b
}

// WithShares sets the shares owned at detection time.
func (b *DividendRecordBuilder) WithShares(shares float64) *DividendRecordBuilder {
	b.SharesOwned = shares
	return b
}

// WithSource sets the detection source.
func (b *DividendRecordBuilder) WithSource(source string) *DividendRecordBuilder {
	b.DetectionSource = source
	return b
}

// AsETF marks the record as an ETF.
func (b *DividendRecordBuilder) AsETF() *DividendRecordBuilder {
	b.IsETF = true
	return b
}

// Inactive marks the record as deactivated.
func (b *DividendRecordBuilder) Inactive() *DividendRecordBuilder {
	b.IsActive = false
	return b
}

// Build inserts the dividend record and returns it.
func (b *DividendRecordBuilder) Build(t *testing.T, db *sql.DB) model.DividendRecord {
	t.Helper()

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339)

	query := `
		INSERT INTO dividend_record (id, user_id, portfolio_id, symbol, annual_dividend,
			quarterly_dividend, dividend_yield, frequency, is_etf, shares_owned,
			estimated_annual_income, detection_source, detected_at, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.UserID, b.PortfolioID, b.Symbol, b.AnnualDividend,
		b.AnnualDividend/4, b.DividendYield, b.Frequency, b.IsETF, b.SharesOwned,
		b.AnnualDividend*b.SharesOwned, b.DetectionSource, timestamp, b.IsActive, timestamp, timestamp)
	if err != nil {
		t.Fatalf("Failed to create test dividend record: %v", err)
	}

	return model.DividendRecord{
		ID:                    b.ID,
		UserID:                b.UserID,
		PortfolioID:           b.PortfolioID,
		Symbol:                b.Symbol,
		AnnualDividend:        b.AnnualDividend,
		QuarterlyDividend:     b.AnnualDividend / 4,
		DividendYield:         b.DividendYield,
		Frequency:             b.Frequency,
		IsETF:                 b.IsETF,
		SharesOwned:           b.SharesOwned,
		EstimatedAnnualIncome: b.AnnualDividend * b.SharesOwned,
		DetectionSource:       b.DetectionSource,
		DetectedAt:            now,
		IsActive:              b.IsActive,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// SyncJobBuilder provides a fluent interface for seeding sync job rows.
type SyncJobBuilder struct {
	ID          string
	UserID      string
	PortfolioID string
	Status      string
	NextRunAt   *time.Time
}

// NewSyncJob creates a SyncJobBuilder for a pending job with no schedule.
func NewSyncJob(userID, portfolioID string) *SyncJobBuilder {
	return &SyncJobBuilder{
		ID:          MakeID(),
		UserID:      userID,
		PortfolioID: portfolioID,
		Status:      model.JobStatusPending,
	}
}

// WithStatus sets the job status.
func (b *SyncJobBuilder) WithStatus(status string) *SyncJobBuilder {
	b.Status = status
	return b
}

// WithNextRunAt sets the next scheduled run time.
func (b *SyncJobBuilder) WithNextRunAt(at time.Time) *SyncJobBuilder {
	b.NextRunAt = &at
	return b
}

// Build inserts the sync job row and returns it.
func (b *SyncJobBuilder) Build(t *testing.T, db *sql.DB) model.SyncJob {
	t.Helper()

	now := time.Now().UTC()
	var nextRun any
	if b.NextRunAt != nil {
		nextRun = b.NextRunAt.UTC().Format(time.RFC3339)
	}

	query := `
		INSERT INTO sync_job (id, user_id, portfolio_id, status, next_run_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.PortfolioID, b.Status, nextRun,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test sync job: %v", err)
	}

	return model.SyncJob{
		ID:          b.ID,
		UserID:      b.UserID,
		PortfolioID: b.PortfolioID,
		Status:      b.Status,
		NextRunAt:   b.NextRunAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Convenience functions

// CreatePosition seeds a position snapshot row with the given symbol and quantity.
func CreatePosition(t *testing.T, db *sql.DB, portfolioID, symbol string, quantity float64) model.Position {
	t.Helper()
	return NewPosition(portfolioID).WithSymbol(symbol).WithQuantity(quantity).Build(t, db)
}
