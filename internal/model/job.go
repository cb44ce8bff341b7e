package model

import "time"

// Job status values for sync jobs.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// SyncJob is the recurring bookkeeping row for one portfolio's dividend sync.
// The scheduler picks up jobs whose next_run_at has passed.
type SyncJob struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	PortfolioID string     `json:"portfolioId"`
	Status      string     `json:"status"`
	LastRunAt   *time.Time `json:"lastRunAt,omitempty"`
	NextRunAt   *time.Time `json:"nextRunAt,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
	Stats       *JobStats  `json:"stats,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// JobStats captures the outcome of one sync run, persisted as JSON on the job.
type JobStats struct {
	StocksAnalyzed      int `json:"stocksAnalyzed"`
	DividendStocksFound int `json:"dividendStocksFound"`
	Inserted            int `json:"inserted"`
	Updated             int `json:"updated"`
	Deactivated         int `json:"deactivated"`
}

// JobResult is the in-memory outcome of running one portfolio job. A failed
// job still carries whatever partial stats were accumulated before the error.
type JobResult struct {
	PortfolioID string   `json:"portfolioId"`
	UserID      string   `json:"userId"`
	Status      string   `json:"status"`
	Stats       JobStats `json:"stats"`
	Err         error    `json:"-"`
}
