package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/response"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/validation"
)

// DividendHandler handles HTTP requests for dividend record endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the dividendService.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// RecordsPerPortfolio handles GET requests to retrieve the active dividend
// records detected for a portfolio.
//
// Endpoint: GET /api/dividends/portfolio/{uuid}?userId={uuid}
// Response: 200 OK with array of DividendRecord
// Error: 400 Bad Request if the user ID is missing or invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) RecordsPerPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")
	userID := r.URL.Query().Get("userId")

	if err := validation.ValidateUUID(userID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid userId parameter", err.Error())
		return
	}

	records, err := h.dividendService.GetActiveRecords(userID, portfolioID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// SummaryPerPortfolio handles GET requests to compute a portfolio's dividend
// summary from its stored position snapshot. A portfolio whose symbols all
// resolve to non-payers returns an all-zero summary rather than an error.
//
// Endpoint: GET /api/dividends/summary/{uuid}
// Response: 200 OK with PortfolioDividendSummary
// Error: 500 Internal Server Error if the position snapshot cannot be read
func (h *DividendHandler) SummaryPerPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	summary, err := h.dividendService.GetPortfolioSummary(r.Context(), portfolioID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
