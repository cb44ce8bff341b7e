package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/divdata"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
)

// nextRunInterval is how far out a completed or failed job is rescheduled.
const nextRunInterval = 6 * time.Hour

// SyncService is the batch orchestrator. It drives positions → calculator →
// reconciler for each portfolio job and maintains the job bookkeeping. A
// failing job records its error and partial stats without halting the run.
type SyncService struct {
	positions  *PositionService
	calculator *CalculatorService
	reconciler *ReconcilerService
	jobRepo    *repository.JobRepository
}

// NewSyncService creates a new SyncService with the provided dependencies.
func NewSyncService(
	positions *PositionService,
	calculator *CalculatorService,
	reconciler *ReconcilerService,
	jobRepo *repository.JobRepository,
) *SyncService {
	return &SyncService{
		positions:  positions,
		calculator: calculator,
		reconciler: reconciler,
		jobRepo:    jobRepo,
	}
}

// RunPortfolio runs one portfolio's sync immediately, creating its job row if
// this is the first sync for the (user, portfolio) pair.
func (s *SyncService) RunPortfolio(ctx context.Context, userID, portfolioID string) (model.JobResult, error) {
	job, err := s.jobRepo.Ensure(ctx, userID, portfolioID)
	if err != nil {
		return model.JobResult{}, fmt.Errorf("failed to ensure sync job: %w", err)
	}

	result := s.runJob(ctx, job)
	return result, result.Err
}

// RunDue runs every job whose next_run_at has passed.
func (s *SyncService) RunDue(ctx context.Context) ([]model.JobResult, error) {
	jobs, err := s.jobRepo.ListDue(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list due jobs: %w", err)
	}
	return s.Run(ctx, jobs), nil
}

// Run processes the given jobs sequentially. One job failing does not stop
// the others; each failure is captured in its own JobResult.
func (s *SyncService) Run(ctx context.Context, jobs []model.SyncJob) []model.JobResult {
	results := make([]model.JobResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, s.runJob(ctx, job))
	}
	return results
}

// ListJobs returns all sync jobs with their bookkeeping state.
func (s *SyncService) ListJobs() ([]model.SyncJob, error) {
	return s.jobRepo.List()
}

func (s *SyncService) runJob(ctx context.Context, job model.SyncJob) model.JobResult {
	result := model.JobResult{
		PortfolioID: job.PortfolioID,
		UserID:      job.UserID,
		Status:      model.JobStatusFailed,
	}

	job.Status = model.JobStatusRunning
	if err := s.jobRepo.UpdateRun(ctx, job); err != nil {
		log.Printf("failed to mark job %s running: %v", job.ID, err)
	}

	positions, err := s.positions.List(ctx, job.UserID, job.PortfolioID)
	if err != nil {
		return s.finishJob(ctx, job, result, fmt.Errorf("failed to fetch positions: %w", err))
	}

	summary := s.calculator.Calculate(ctx, positions)
	currentSymbols := heldSymbols(positions)
	result.Stats.StocksAnalyzed = len(currentSymbols)
	result.Stats.DividendStocksFound = len(summary.DividendPayingStocks)

	computed := buildRecords(job.UserID, job.PortfolioID, summary)
	reconciled, err := s.reconciler.Reconcile(ctx, job.UserID, job.PortfolioID, computed, currentSymbols)
	result.Stats.Inserted = reconciled.Inserted
	result.Stats.Updated = reconciled.Updated
	result.Stats.Deactivated = reconciled.Deactivated
	if err != nil {
		return s.finishJob(ctx, job, result, err)
	}

	result.Status = model.JobStatusCompleted
	return s.finishJob(ctx, job, result, nil)
}

// finishJob writes the run outcome to the job row. Partial stats from a
// failed run are persisted alongside the error.
func (s *SyncService) finishJob(ctx context.Context, job model.SyncJob, result model.JobResult, runErr error) model.JobResult {
	now := time.Now().UTC()
	nextRun := now.Add(nextRunInterval)

	job.Status = result.Status
	job.LastRunAt = &now
	job.NextRunAt = &nextRun
	job.LastError = ""
	if runErr != nil {
		result.Status = model.JobStatusFailed
		job.Status = model.JobStatusFailed
		job.LastError = runErr.Error()
	}
	stats := result.Stats
	job.Stats = &stats

	if err := s.jobRepo.UpdateRun(ctx, job); err != nil {
		log.Printf("failed to update job %s bookkeeping: %v", job.ID, err)
	}

	result.Err = runErr
	return result
}

// heldSymbols returns the sorted set of normalized symbols currently held
// with a positive quantity.
func heldSymbols(positions []model.Position) []string {
	seen := make(map[string]struct{})
	for _, position := range positions {
		symbol := divdata.Normalize(position.Symbol)
		if symbol == "" || position.Quantity <= 0 {
			continue
		}
		seen[symbol] = struct{}{}
	}

	symbols := make([]string, 0, len(seen))
	for symbol := range seen {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// buildRecords converts a calculated summary into the persisted record shape.
func buildRecords(userID, portfolioID string, summary model.PortfolioDividendSummary) []model.DividendRecord {
	now := time.Now().UTC()
	records := make([]model.DividendRecord, 0, len(summary.DividendPayingStocks))
	for _, stock := range summary.DividendPayingStocks {
		records = append(records, model.DividendRecord{
			ID:                    uuid.NewString(),
			UserID:                userID,
			PortfolioID:           portfolioID,
			Symbol:                stock.Symbol,
			AnnualDividend:        stock.AnnualDividend,
			QuarterlyDividend:     stock.QuarterlyDividend,
			DividendYield:         stock.Yield,
			Frequency:             stock.Frequency,
			NextExDate:            stock.NextExDate,
			PaymentDate:           stock.PaymentDate,
			IsETF:                 stock.IsETF,
			SharesOwned:           stock.Shares,
			EstimatedAnnualIncome: stock.AnnualIncome,
			DetectionSource:       stock.Source,
			DetectedAt:            now,
			IsActive:              true,
		})
	}
	return records
}
