package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

const promptColumns = `SELECT p.id, p.name, p.language, p.type, p.content, p.likes, p.dislikes, p.idea_id, p.created_at,
		i.name AS idea_name
	FROM prompts p
	LEFT JOIN ideas i ON p.idea_id = i.id`

func (db *DB) CreatePrompt(ctx context.Context, p *domain.Prompt) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO prompts (name, language, type, content, idea_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, p.Name, p.Language, p.Type, p.Content, p.IdeaID, p.CreatedAt)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (db *DB) GetPrompt(ctx context.Context, id int64) (*domain.Prompt, error) {
	p := &domain.Prompt{}
	err := db.GetContext(ctx, p, promptColumns+` WHERE p.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (db *DB) ListPrompts(ctx context.Context) ([]*domain.Prompt, error) {
	prompts := []*domain.Prompt{}
	err := db.SelectContext(ctx, &prompts, promptColumns+` ORDER BY p.created_at DESC, p.id DESC`)
	return prompts, err
}

// LikePrompt increments likes and reports whether the prompt exists.
func (db *DB) LikePrompt(ctx context.Context, id int64) (bool, error) {
	return db.bumpPromptCounter(ctx, `UPDATE prompts SET likes = likes + 1 WHERE id = ?`, id)
}

// DislikePrompt increments dislikes and reports whether the prompt exists.
func (db *DB) DislikePrompt(ctx context.Context, id int64) (bool, error) {
	return db.bumpPromptCounter(ctx, `UPDATE prompts SET dislikes = dislikes + 1 WHERE id = ?`, id)
}

func (db *DB) bumpPromptCounter(ctx context.Context, query string, id int64) (bool, error) {
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
