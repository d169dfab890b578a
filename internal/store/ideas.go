package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func (db *DB) CreateIdea(ctx context.Context, idea *domain.Idea) error {
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO ideas (name, description, type, created_at) VALUES (?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, idea.Name, idea.Description, idea.Type, idea.CreatedAt)
	if err != nil {
		return err
	}
	idea.ID, err = res.LastInsertId()
	return err
}

func (db *DB) GetIdea(ctx context.Context, id int64) (*domain.Idea, error) {
	query := `SELECT id, name, description, type, created_at FROM ideas WHERE id = ?`

	idea := &domain.Idea{}
	err := db.GetContext(ctx, idea, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return idea, nil
}

func (db *DB) ListIdeas(ctx context.Context) ([]*domain.Idea, error) {
	query := `SELECT id, name, description, type, created_at FROM ideas ORDER BY created_at DESC, id DESC`

	ideas := []*domain.Idea{}
	err := db.SelectContext(ctx, &ideas, query)
	return ideas, err
}
