package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// CyclesRepo mirrors the authored catalog into the cycles table so other
// consumers (the web app) can read it over the database.
type CyclesRepo struct {
	db *sqlx.DB
}

type cycleRow struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Direction      string          `db:"direction"`
	Gender         models.Gender   `db:"gender"`
	Level          string          `db:"level"`
	Period         string          `db:"period"`
	WeightMin      float64         `db:"weight_min"`
	WeightMax      *float64        `db:"weight_max"`
	AdditionalInfo string          `db:"additional_info"`
	Exercises      json.RawMessage `db:"exercises"`
}

func (row cycleRow) toModel() (models.Cycle, error) {
	c := models.Cycle{
		ID:             row.ID,
		Name:           row.Name,
		Direction:      row.Direction,
		Gender:         row.Gender,
		Level:          row.Level,
		Period:         row.Period,
		WeightMin:      row.WeightMin,
		WeightMax:      row.WeightMax,
		AdditionalInfo: row.AdditionalInfo,
	}
	if len(row.Exercises) > 0 {
		if err := json.Unmarshal(row.Exercises, &c.Exercises); err != nil {
			return models.Cycle{}, fmt.Errorf("cycles: decode exercises for %d: %w", row.ID, err)
		}
	}
	return c, nil
}

// Upsert writes a catalog cycle, replacing any previous version.
func (r *CyclesRepo) Upsert(ctx context.Context, c models.Cycle) error {
	exercises, err := json.Marshal(c.Exercises)
	if err != nil {
		return fmt.Errorf("cycles: encode exercises for %d: %w", c.ID, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cycles (id, name, direction, gender, level, period, weight_min, weight_max, additional_info, exercises)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			direction = EXCLUDED.direction,
			gender = EXCLUDED.gender,
			level = EXCLUDED.level,
			period = EXCLUDED.period,
			weight_min = EXCLUDED.weight_min,
			weight_max = EXCLUDED.weight_max,
			additional_info = EXCLUDED.additional_info,
			exercises = EXCLUDED.exercises`,
		c.ID, c.Name, c.Direction, c.Gender, c.Level, c.Period,
		c.WeightMin, c.WeightMax, c.AdditionalInfo, exercises)
	if err != nil {
		return fmt.Errorf("cycles: upsert %d: %w", c.ID, err)
	}
	return nil
}

// List returns all stored cycles in id order.
func (r *CyclesRepo) List(ctx context.Context) ([]models.Cycle, error) {
	var rows []cycleRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, direction, gender, level, period, weight_min, weight_max, additional_info, exercises
		FROM cycles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("cycles: list: %w", err)
	}
	out := make([]models.Cycle, 0, len(rows))
	for _, row := range rows {
		c, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Get returns a stored cycle or nil when absent.
func (r *CyclesRepo) Get(ctx context.Context, id int64) (*models.Cycle, error) {
	var row cycleRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, direction, gender, level, period, weight_min, weight_max, additional_info, exercises
		FROM cycles
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cycles: get %d: %w", id, err)
	}
	c, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &c, nil
}
