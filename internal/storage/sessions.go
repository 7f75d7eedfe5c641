package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// SessionsRepo persists the expanded per-week training schedule of a plan.
type SessionsRepo struct {
	db *sqlx.DB
}

type sessionRow struct {
	ID        int64           `db:"id"`
	PlanID    int64           `db:"plan_id"`
	Week      int             `db:"week_number"`
	Day       int             `db:"day_number"`
	Name      string          `db:"session_name"`
	Exercises json.RawMessage `db:"exercises"`
	Notes     json.RawMessage `db:"notes"`
}

func (row sessionRow) toModel() (models.WorkoutSession, error) {
	s := models.WorkoutSession{
		ID:     row.ID,
		PlanID: row.PlanID,
		Week:   row.Week,
		Day:    row.Day,
		Name:   row.Name,
	}
	if len(row.Exercises) > 0 {
		if err := json.Unmarshal(row.Exercises, &s.Exercises); err != nil {
			return models.WorkoutSession{}, fmt.Errorf("sessions: decode exercises for %d: %w", row.ID, err)
		}
	}
	if len(row.Notes) > 0 {
		if err := json.Unmarshal(row.Notes, &s.Notes); err != nil {
			return models.WorkoutSession{}, fmt.Errorf("sessions: decode notes for %d: %w", row.ID, err)
		}
	}
	return s, nil
}

// InsertBatch writes all sessions of a plan in one transaction.
func (r *SessionsRepo) InsertBatch(ctx context.Context, planID int64, sessions []models.WorkoutSession) error {
	if len(sessions) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sessions: begin batch for plan %d: %w", planID, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO workout_sessions (plan_id, week_number, day_number, session_name, exercises, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("sessions: prepare batch for plan %d: %w", planID, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, s := range sessions {
		exercises, err := json.Marshal(s.Exercises)
		if err != nil {
			return fmt.Errorf("sessions: encode exercises: %w", err)
		}
		notes, err := json.Marshal(s.Notes)
		if err != nil {
			return fmt.Errorf("sessions: encode notes: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, planID, s.Week, s.Day, s.Name, exercises, notes); err != nil {
			return fmt.Errorf("sessions: insert week %d day %d for plan %d: %w", s.Week, s.Day, planID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sessions: commit batch for plan %d: %w", planID, err)
	}
	return nil
}

// ListByPlan returns the plan schedule in week/day order.
func (r *SessionsRepo) ListByPlan(ctx context.Context, planID int64) ([]models.WorkoutSession, error) {
	var rows []sessionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, plan_id, week_number, day_number, session_name, exercises, notes
		FROM workout_sessions
		WHERE plan_id = $1
		ORDER BY week_number, day_number`, planID)
	if err != nil {
		return nil, fmt.Errorf("sessions: list for plan %d: %w", planID, err)
	}
	out := make([]models.WorkoutSession, 0, len(rows))
	for _, row := range rows {
		s, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
