package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// MaxesRepo persists per-exercise personal maximums.
type MaxesRepo struct {
	db *sqlx.DB
}

// Upsert records a maximum, replacing any previous value for the exercise.
func (r *MaxesRepo) Upsert(ctx context.Context, userID int64, exerciseName string, maxWeight float64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_max_weights (user_id, exercise_name, max_weight)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, exercise_name) DO UPDATE SET
			max_weight = EXCLUDED.max_weight,
			updated_at = NOW()`,
		userID, exerciseName, maxWeight)
	if err != nil {
		return fmt.Errorf("maxes: upsert %s for user %d: %w", exerciseName, userID, err)
	}
	return nil
}

// Get returns the stored maximum for an exercise or nil when absent.
func (r *MaxesRepo) Get(ctx context.Context, userID int64, exerciseName string) (*models.MaxWeight, error) {
	var m models.MaxWeight
	err := r.db.GetContext(ctx, &m, `
		SELECT id, user_id, exercise_name, max_weight, updated_at
		FROM user_max_weights
		WHERE user_id = $1 AND exercise_name = $2`, userID, exerciseName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("maxes: get %s for user %d: %w", exerciseName, userID, err)
	}
	return &m, nil
}

// ListByUser returns all recorded maximums for a user in exercise order.
func (r *MaxesRepo) ListByUser(ctx context.Context, userID int64) ([]models.MaxWeight, error) {
	var out []models.MaxWeight
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, user_id, exercise_name, max_weight, updated_at
		FROM user_max_weights
		WHERE user_id = $1
		ORDER BY exercise_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("maxes: list for user %d: %w", userID, err)
	}
	return out, nil
}
