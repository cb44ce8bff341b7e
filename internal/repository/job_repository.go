package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

const jobColumns = `id, user_id, portfolio_id, status, last_run_at, next_run_at, last_error, stats, created_at, updated_at`

// JobRepository provides data access for the sync_job bookkeeping table.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository with the provided database connection.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List retrieves all sync jobs ordered by next run time.
func (r *JobRepository) List() ([]model.SyncJob, error) {
	query := `SELECT ` + jobColumns + ` FROM sync_job ORDER BY next_run_at ASC`
	return r.queryJobs(query)
}

// ListDue retrieves jobs whose next_run_at has passed (or was never set),
// excluding jobs currently marked running.
func (r *JobRepository) ListDue(now time.Time) ([]model.SyncJob, error) {
	query := `SELECT ` + jobColumns + `
		FROM sync_job
		WHERE (next_run_at IS NULL OR next_run_at <= ?) AND status != ?
		ORDER BY next_run_at ASC`
	return r.queryJobs(query, now.UTC().Format(time.RFC3339), model.JobStatusRunning)
}

// ResetAbandoned moves jobs still marked running back to pending. The running
// status is only meaningful inside a live process, so any row carrying it at
// startup belongs to a run that never finished. Returns the number of jobs
// reset.
func (r *JobRepository) ResetAbandoned(ctx context.Context) (int64, error) {
	query := `UPDATE sync_job SET status = ?, updated_at = ? WHERE status = ?`
	result, err := r.db.ExecContext(ctx, query,
		model.JobStatusPending, time.Now().UTC().Format(time.RFC3339), model.JobStatusRunning)
	if err != nil {
		return 0, fmt.Errorf("failed to reset abandoned sync jobs: %w", err)
	}
	return result.RowsAffected()
}

// Ensure returns the job for (userID, portfolioID), creating a pending job if
// none exists yet.
func (r *JobRepository) Ensure(ctx context.Context, userID, portfolioID string) (model.SyncJob, error) {
	job, err := r.get(userID, portfolioID)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, apperrors.ErrSyncJobNotFound) {
		return model.SyncJob{}, err
	}

	job = model.SyncJob{
		ID:          uuid.NewString(),
		UserID:      userID,
		PortfolioID: portfolioID,
		Status:      model.JobStatusPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	query := `INSERT INTO sync_job (id, user_id, portfolio_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		job.ID, job.UserID, job.PortfolioID, job.Status,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return model.SyncJob{}, fmt.Errorf("failed to create sync job: %w", err)
	}

	return job, nil
}

// UpdateRun writes the bookkeeping outcome of a run: status, run timestamps,
// last error and stats.
func (r *JobRepository) UpdateRun(ctx context.Context, job model.SyncJob) error {
	var statsJSON any
	if job.Stats != nil {
		encoded, err := json.Marshal(job.Stats)
		if err != nil {
			return fmt.Errorf("failed to encode job stats: %w", err)
		}
		statsJSON = string(encoded)
	}

	var lastRun, nextRun any
	if job.LastRunAt != nil {
		lastRun = job.LastRunAt.UTC().Format(time.RFC3339)
	}
	if job.NextRunAt != nil {
		nextRun = job.NextRunAt.UTC().Format(time.RFC3339)
	}

	query := `UPDATE sync_job
		SET status = ?, last_run_at = ?, next_run_at = ?, last_error = ?, stats = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		job.Status, lastRun, nextRun, job.LastError, statsJSON,
		time.Now().UTC().Format(time.RFC3339), job.ID)
	if err != nil {
		return fmt.Errorf("failed to update sync job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count updated jobs: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSyncJobNotFound
	}
	return nil
}

func (r *JobRepository) get(userID, portfolioID string) (model.SyncJob, error) {
	query := `SELECT ` + jobColumns + ` FROM sync_job WHERE user_id = ? AND portfolio_id = ?`
	jobs, err := r.queryJobs(query, userID, portfolioID)
	if err != nil {
		return model.SyncJob{}, err
	}
	if len(jobs) == 0 {
		return model.SyncJob{}, apperrors.ErrSyncJobNotFound
	}
	return jobs[0], nil
}

func (r *JobRepository) queryJobs(query string, args ...any) ([]model.SyncJob, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync_job table: %w", err)
	}
	defer rows.Close()

	jobs := []model.SyncJob{}
	for rows.Next() {
		var job model.SyncJob
		var lastRunStr, nextRunStr, lastErrorStr, statsStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.PortfolioID,
			&job.Status,
			&lastRunStr,
			&nextRunStr,
			&lastErrorStr,
			&statsStr,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync_job row: %w", err)
		}

		if lastRunStr.Valid {
			lastRun, err := ParseTime(lastRunStr.String)
			if err != nil {
				return nil, err
			}
			job.LastRunAt = &lastRun
		}
		if nextRunStr.Valid {
			nextRun, err := ParseTime(nextRunStr.String)
			if err != nil {
				return nil, err
			}
			job.NextRunAt = &nextRun
		}
		if lastErrorStr.Valid {
			job.LastError = lastErrorStr.String
		}
		if statsStr.Valid && statsStr.String != "" {
			var stats model.JobStats
			if err := json.Unmarshal([]byte(statsStr.String), &stats); err != nil {
				return nil, fmt.Errorf("failed to parse job stats: %w", err)
			}
			job.Stats = &stats
		}

		job.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		job.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		jobs = append(jobs, job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync_job table: %w", err)
	}

	return jobs, nil
}
