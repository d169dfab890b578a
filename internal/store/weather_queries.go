package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func (db *DB) CreateWeatherQuery(ctx context.Context, q *domain.WeatherQuery) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO weather_queries (wizard_id, status, request, response, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, q.WizardID, q.Status, q.Request, q.Response, q.CreatedAt)
	if err != nil {
		return err
	}
	q.ID, err = res.LastInsertId()
	return err
}

// GetLatestWeatherQuery returns the newest query for a wizard, or nil.
func (db *DB) GetLatestWeatherQuery(ctx context.Context, wizardID int64) (*domain.WeatherQuery, error) {
	query := `SELECT id, wizard_id, status, request, response, created_at
		FROM weather_queries
		WHERE wizard_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	q := &domain.WeatherQuery{}
	err := db.GetContext(ctx, q, query, wizardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}
