package service

import (
	"context"
	"fmt"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
)

// ReconcilerService diffs freshly computed dividend records against the
// persisted snapshot for a portfolio and issues only the necessary writes.
// Re-running a reconciliation with identical computed input is a no-op.
type ReconcilerService struct {
	recordRepo *repository.DividendRecordRepository
}

// NewReconcilerService creates a new ReconcilerService with the provided repository dependency.
func NewReconcilerService(recordRepo *repository.DividendRecordRepository) *ReconcilerService {
	return &ReconcilerService{recordRepo: recordRepo}
}

// Reconcile classifies each computed record as new, changed or unchanged
// against the stored snapshot, then deactivates stored records whose symbol
// is no longer held. Change detection compares annual dividend and yield with
// exact float equality; any numeric difference counts as a change. Inactive
// stored records whose symbol reappears are reactivated through the update
// path.
//
// Writes are at-least-once, not atomic: a write failure aborts the remaining
// writes of this pass and is returned alongside the partial result, and the
// next run self-corrects through the same diff.
func (s *ReconcilerService) Reconcile(ctx context.Context, userID, portfolioID string, computed []model.DividendRecord, currentSymbols []string) (model.ReconcileResult, error) {
	result := model.ReconcileResult{}

	stored, err := s.recordRepo.ListByPortfolio(userID, portfolioID)
	if err != nil {
		return result, fmt.Errorf("failed to load stored dividend records: %w", err)
	}

	existing := make(map[string]model.DividendRecord, len(stored))
	for _, record := range stored {
		existing[record.Symbol] = record
	}

	var inserts, updates []model.DividendRecord
	for _, record := range computed {
		record.UserID = userID
		record.PortfolioID = portfolioID
		record.IsActive = true

		current, ok := existing[record.Symbol]
		if !ok {
			inserts = append(inserts, record)
			continue
		}

		changed := current.AnnualDividend != record.AnnualDividend ||
			current.DividendYield != record.DividendYield
		if changed || !current.IsActive {
			record.ID = current.ID
			updates = append(updates, record)
		}
		// Unchanged and active: no write. Shares and income are refreshed
		// only as part of a triggered update.
	}

	if len(inserts) > 0 {
		if err := s.recordRepo.InsertMany(ctx, inserts); err != nil {
			return result, err
		}
		result.Inserted = len(inserts)
	}

	for _, record := range updates {
		if err := s.recordRepo.Upsert(ctx, record); err != nil {
			return result, err
		}
		result.Updated++
	}

	deactivated, err := s.recordRepo.Deactivate(ctx, userID, portfolioID, currentSymbols)
	if err != nil {
		return result, err
	}
	result.Deactivated = int(deactivated)

	return result, nil
}
