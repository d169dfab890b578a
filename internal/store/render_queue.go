package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

const renderJobColumns = `SELECT id, wizard_id, type, status, error, created_at, updated_at FROM render_queue`

func (db *DB) CreateRenderJob(ctx context.Context, job *domain.RenderJob) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = job.CreatedAt
	if job.Status == "" {
		job.Status = domain.RenderStatusPending
	}

	query := `INSERT INTO render_queue (wizard_id, type, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, job.WizardID, job.Type, job.Status, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return err
	}
	job.ID, err = res.LastInsertId()
	return err
}

func (db *DB) GetRenderJob(ctx context.Context, id int64) (*domain.RenderJob, error) {
	job := &domain.RenderJob{}
	err := db.GetContext(ctx, job, renderJobColumns+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetOldestPendingRenderJob returns the next job to render, or nil when the queue is empty.
func (db *DB) GetOldestPendingRenderJob(ctx context.Context) (*domain.RenderJob, error) {
	job := &domain.RenderJob{}
	err := db.GetContext(ctx, job, renderJobColumns+` WHERE status = ? ORDER BY created_at ASC, id ASC LIMIT 1`,
		domain.RenderStatusPending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (db *DB) ListRenderJobs(ctx context.Context, limit int) ([]*domain.RenderJob, error) {
	jobs := []*domain.RenderJob{}
	err := db.SelectContext(ctx, &jobs, renderJobColumns+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	return jobs, err
}

// TransitionRenderJob moves a pending job to a terminal status. It reports
// false when the job does not exist or has already left pending.
func (db *DB) TransitionRenderJob(ctx context.Context, id int64, status domain.RenderStatus, errMsg *string) (bool, error) {
	return transitionRenderJob(ctx, db, id, status, errMsg)
}

// ErrRenderJobSettled is returned when a job left pending before its render
// could be recorded.
var ErrRenderJobSettled = errors.New("render job already settled")

// CompleteRenderJob marks the job completed and stores the rendered video in
// one transaction. The bool reports whether a job row was updated. A job id
// with no row still gets its video; a job that exists but is no longer
// pending rolls back with ErrRenderJobSettled.
func (db *DB) CompleteRenderJob(ctx context.Context, id int64, v *domain.Video) (bool, error) {
	var updated bool
	err := db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := transitionRenderJob(ctx, tx, id, domain.RenderStatusCompleted, nil)
		if err != nil {
			return fmt.Errorf("complete render job: %w", err)
		}
		if !ok {
			var exists int
			err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM render_queue WHERE id = ?`, id)
			if err != nil {
				return fmt.Errorf("check render job: %w", err)
			}
			if exists > 0 {
				return ErrRenderJobSettled
			}
		}
		updated = ok

		if err := insertVideo(ctx, tx, v); err != nil {
			return fmt.Errorf("insert video: %w", err)
		}
		return nil
	})
	if err != nil {
		v.ID = 0
		return false, err
	}
	return updated, nil
}

func transitionRenderJob(ctx context.Context, ext sqlx.ExecerContext, id int64, status domain.RenderStatus, errMsg *string) (bool, error) {
	if !domain.RenderStatusPending.CanTransition(status) {
		return false, domain.NewValidationError("invalid render status transition to " + string(status))
	}

	query := `UPDATE render_queue SET status = ?, error = ?, updated_at = ? WHERE id = ? AND status = ?`
	res, err := ext.ExecContext(ctx, query, status, errMsg, time.Now().UTC(), id, domain.RenderStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
