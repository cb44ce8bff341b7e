package service

import (
	"context"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
)

// DividendService is the read side for dividend data: persisted records for
// a portfolio and on-the-fly portfolio summaries.
type DividendService struct {
	recordRepo   *repository.DividendRecordRepository
	positionRepo *repository.PositionRepository
	calculator   *CalculatorService
}

// NewDividendService creates a new DividendService with the provided dependencies.
func NewDividendService(
	recordRepo *repository.DividendRecordRepository,
	positionRepo *repository.PositionRepository,
	calculator *CalculatorService,
) *DividendService {
	return &DividendService{
		recordRepo:   recordRepo,
		positionRepo: positionRepo,
		calculator:   calculator,
	}
}

// GetActiveRecords retrieves the active dividend records for a portfolio,
// highest estimated income first.
func (s *DividendService) GetActiveRecords(userID, portfolioID string) ([]model.DividendRecord, error) {
	return s.recordRepo.ListActive(userID, portfolioID)
}

// GetPortfolioSummary computes the dividend summary for a portfolio from its
// stored position snapshot. Unresolvable symbols degrade to zero contribution
// rather than failing the summary.
func (s *DividendService) GetPortfolioSummary(ctx context.Context, portfolioID string) (model.PortfolioDividendSummary, error) {
	positions, err := s.positionRepo.List(portfolioID)
	if err != nil {
		return model.PortfolioDividendSummary{}, err
	}
	return s.calculator.Calculate(ctx, positions), nil
}
