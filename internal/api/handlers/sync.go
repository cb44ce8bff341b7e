package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/request"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/response"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/validation"
)

// SyncHandler handles HTTP requests that trigger dividend synchronization.
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler creates a new SyncHandler with the provided service dependency.
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// AnalysisStats summarizes the write-set and job outcomes of a sync run.
type AnalysisStats struct {
	Inserted    int `json:"inserted"`
	Updated     int `json:"updated"`
	Deactivated int `json:"deactivated"`
	JobsRun     int `json:"jobsRun"`
	JobsFailed  int `json:"jobsFailed"`
}

// SyncResponse is the JSON summary returned by the sync trigger endpoint.
type SyncResponse struct {
	Success             bool          `json:"success"`
	StocksAnalyzed      int           `json:"stocksAnalyzed"`
	DividendStocksFound int           `json:"dividendStocksFound"`
	AnalysisStats       AnalysisStats `json:"analysisStats"`
}

// RateLimitedResponse tells the caller when a rate-limited sync may be retried.
type RateLimitedResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int    `json:"retryAfterSeconds"`
}

// Sync handles POST requests that trigger dividend synchronization, either
// for one portfolio or for all due jobs.
//
// Endpoint: POST /api/sync
// Request Body: SyncRequest ({userId, portfolioId} or {runAll: true})
// Response: 200 OK with SyncResponse
// Error: 400 Bad Request if validation fails
// Error: 429 Too Many Requests if the position source is rate limited
// Error: 500 Internal Server Error if the sync fails
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SyncRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSyncRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if req.RunAll {
		h.runAll(w, r)
		return
	}

	result, err := h.syncService.RunPortfolio(r.Context(), req.UserID, req.PortfolioID)
	if err != nil {
		var rateLimited *apperrors.RateLimitedError
		if errors.As(err, &rateLimited) {
			response.RespondJSON(w, http.StatusTooManyRequests, RateLimitedResponse{
				Error:             apperrors.ErrRateLimited.Error(),
				RetryAfterSeconds: int(math.Ceil(rateLimited.RetryAfter.Seconds())),
			})
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRunSync.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, buildSyncResponse([]model.JobResult{result}))
}

func (h *SyncHandler) runAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.syncService.RunDue(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRunSync.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, buildSyncResponse(results))
}

// buildSyncResponse aggregates job results into the trigger response. The
// run counts as successful when no job failed; individual failures are still
// reflected in the stats.
func buildSyncResponse(results []model.JobResult) SyncResponse {
	resp := SyncResponse{Success: true}
	for _, result := range results {
		resp.StocksAnalyzed += result.Stats.StocksAnalyzed
		resp.DividendStocksFound += result.Stats.DividendStocksFound
		resp.AnalysisStats.Inserted += result.Stats.Inserted
		resp.AnalysisStats.Updated += result.Stats.Updated
		resp.AnalysisStats.Deactivated += result.Stats.Deactivated
		resp.AnalysisStats.JobsRun++
		if result.Status == model.JobStatusFailed {
			resp.AnalysisStats.JobsFailed++
			resp.Success = false
		}
	}
	return resp
}
