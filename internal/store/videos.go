package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

const videoColumns = `SELECT id, wizard_id, title, status, file_path, duration, format, created_at, updated_at FROM videos`

func (db *DB) CreateVideo(ctx context.Context, v *domain.Video) error {
	return insertVideo(ctx, db, v)
}

func insertVideo(ctx context.Context, ext sqlx.ExecerContext, v *domain.Video) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = v.CreatedAt

	query := `INSERT INTO videos (wizard_id, title, status, file_path, duration, format, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := ext.ExecContext(ctx, query,
		v.WizardID, v.Title, v.Status, v.FilePath, v.Duration, v.Format, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return err
	}
	v.ID, err = res.LastInsertId()
	return err
}

func (db *DB) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	videos := []*domain.Video{}
	err := db.SelectContext(ctx, &videos, videoColumns+` ORDER BY created_at DESC, id DESC`)
	return videos, err
}

func (db *DB) ListVideosByWizard(ctx context.Context, wizardID int64) ([]*domain.Video, error) {
	videos := []*domain.Video{}
	err := db.SelectContext(ctx, &videos, videoColumns+` WHERE wizard_id = ? ORDER BY created_at DESC, id DESC`, wizardID)
	return videos, err
}
