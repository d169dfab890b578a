package store

import (
	"context"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func (db *DB) CreateScene(ctx context.Context, s *domain.Scene) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO scenes (wizard_id, type, data, created_at) VALUES (?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, s.WizardID, s.Type, s.Data, s.CreatedAt)
	if err != nil {
		return err
	}
	s.ID, err = res.LastInsertId()
	return err
}

// ListScenesByWizard returns scenes in insertion order.
func (db *DB) ListScenesByWizard(ctx context.Context, wizardID int64) ([]*domain.Scene, error) {
	query := `SELECT id, wizard_id, type, data, created_at
		FROM scenes
		WHERE wizard_id = ?
		ORDER BY created_at ASC, id ASC`

	scenes := []*domain.Scene{}
	err := db.SelectContext(ctx, &scenes, query, wizardID)
	return scenes, err
}
