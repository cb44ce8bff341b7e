package handlers

import (
	"net/http"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/response"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
)

// JobHandler handles HTTP requests for sync job bookkeeping.
type JobHandler struct {
	syncService *service.SyncService
}

// NewJobHandler creates a new JobHandler with the provided service dependency.
func NewJobHandler(syncService *service.SyncService) *JobHandler {
	return &JobHandler{syncService: syncService}
}

// Jobs handles GET requests to list all sync jobs with their run state.
//
// Endpoint: GET /api/jobs
// Response: 200 OK with array of SyncJob
// Error: 500 Internal Server Error if retrieval fails
func (h *JobHandler) Jobs(w http.ResponseWriter, _ *http.Request) {
	jobs, err := h.syncService.ListJobs()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveJobs.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, jobs)
}
