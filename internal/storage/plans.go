package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// PlansRepo persists generated workout plans. All reads and deletes are
// scoped to the owning user.
type PlansRepo struct {
	db *sqlx.DB
}

type planRow struct {
	ID        int64           `db:"id"`
	PublicID  string          `db:"public_id"`
	UserID    int64           `db:"user_id"`
	CycleID   int64           `db:"cycle_id"`
	Name      string          `db:"name"`
	Direction string          `db:"direction"`
	Level     string          `db:"level"`
	Period    string          `db:"period"`
	Duration  string          `db:"duration"`
	Frequency string          `db:"frequency"`
	Exercises json.RawMessage `db:"exercises"`
	Notes     json.RawMessage `db:"notes"`
	CreatedAt sql.NullTime    `db:"created_at"`
}

func (row planRow) toModel() (models.WorkoutPlan, error) {
	p := models.WorkoutPlan{
		ID:        row.ID,
		PublicID:  row.PublicID,
		UserID:    row.UserID,
		CycleID:   row.CycleID,
		Name:      row.Name,
		Direction: row.Direction,
		Level:     row.Level,
		Period:    row.Period,
		Duration:  row.Duration,
		Frequency: row.Frequency,
		CreatedAt: row.CreatedAt.Time,
	}
	if len(row.Exercises) > 0 {
		if err := json.Unmarshal(row.Exercises, &p.Exercises); err != nil {
			return models.WorkoutPlan{}, fmt.Errorf("plans: decode exercises for %d: %w", row.ID, err)
		}
	}
	if len(row.Notes) > 0 {
		if err := json.Unmarshal(row.Notes, &p.Notes); err != nil {
			return models.WorkoutPlan{}, fmt.Errorf("plans: decode notes for %d: %w", row.ID, err)
		}
	}
	return p, nil
}

// Create inserts a plan, assigning its public id and filling ID/CreatedAt
// from the database.
func (r *PlansRepo) Create(ctx context.Context, p *models.WorkoutPlan) error {
	if p.PublicID == "" {
		p.PublicID = uuid.NewString()
	}
	exercises, err := json.Marshal(p.Exercises)
	if err != nil {
		return fmt.Errorf("plans: encode exercises: %w", err)
	}
	notes, err := json.Marshal(p.Notes)
	if err != nil {
		return fmt.Errorf("plans: encode notes: %w", err)
	}

	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO workout_plans
			(public_id, user_id, cycle_id, name, direction, level, period, duration, frequency, exercises, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		p.PublicID, p.UserID, p.CycleID, p.Name, p.Direction, p.Level,
		p.Period, p.Duration, p.Frequency, exercises, notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("plans: create for user %d: %w", p.UserID, err)
	}
	return nil
}

// ListByUser returns the user's plans, newest first.
func (r *PlansRepo) ListByUser(ctx context.Context, userID int64) ([]models.WorkoutPlan, error) {
	var rows []planRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, public_id, user_id, cycle_id, name, direction, level, period, duration, frequency, exercises, notes, created_at
		FROM workout_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("plans: list for user %d: %w", userID, err)
	}
	out := make([]models.WorkoutPlan, 0, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns the user's plan by id or nil when absent or owned by
// someone else.
func (r *PlansRepo) Get(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, public_id, user_id, cycle_id, name, direction, level, period, duration, frequency, exercises, notes, created_at
		FROM workout_plans
		WHERE id = $1 AND user_id = $2`, planID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plans: get %d for user %d: %w", planID, userID, err)
	}
	p, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the user's plan and reports whether a row was deleted.
// Sessions go with it via the foreign key cascade.
func (r *PlansRepo) Delete(ctx context.Context, userID, planID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM workout_plans
		WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return false, fmt.Errorf("plans: delete %d for user %d: %w", planID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("plans: delete %d for user %d: %w", planID, userID, err)
	}
	return n > 0, nil
}
