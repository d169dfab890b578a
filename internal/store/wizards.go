package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func (db *DB) CreateWizard(ctx context.Context, w *domain.Wizard) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO wizards (idea_id, prompt_id, status, created_at) VALUES (?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, w.IdeaID, w.PromptID, w.Status, w.CreatedAt)
	if err != nil {
		return err
	}
	w.ID, err = res.LastInsertId()
	return err
}

func (db *DB) GetWizard(ctx context.Context, id int64) (*domain.Wizard, error) {
	query := `SELECT id, idea_id, prompt_id, status, created_at FROM wizards WHERE id = ?`

	w := &domain.Wizard{}
	err := db.GetContext(ctx, w, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (db *DB) ListWizards(ctx context.Context) ([]*domain.Wizard, error) {
	query := `SELECT id, idea_id, prompt_id, status, created_at FROM wizards ORDER BY id ASC`

	wizards := []*domain.Wizard{}
	err := db.SelectContext(ctx, &wizards, query)
	return wizards, err
}
