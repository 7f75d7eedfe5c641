package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// UsersRepo persists Telegram users and their profile fields. Each setter
// is an independent upsert so the dialog engine can write one answer at a
// time without a prior registration step.
type UsersRepo struct {
	db *sqlx.DB
}

// Get returns the user or nil when the row does not exist.
func (r *UsersRepo) Get(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `
		SELECT id, username, first_name, last_name, gender, weight, height, level, created_at, updated_at
		FROM users
		WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: get %d: %w", userID, err)
	}
	return &u, nil
}

// Upsert registers a user, refreshing the Telegram identity fields while
// leaving profile fields untouched.
func (r *UsersRepo) Upsert(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()`,
		u.ID, u.Username, u.FirstName, u.LastName)
	if err != nil {
		return fmt.Errorf("users: upsert %d: %w", u.ID, err)
	}
	return nil
}

// SetGender persists the gender profile field.
func (r *UsersRepo) SetGender(ctx context.Context, userID int64, gender models.Gender) error {
	return r.setField(ctx, userID, "gender", string(gender))
}

// SetWeight persists the weight profile field.
func (r *UsersRepo) SetWeight(ctx context.Context, userID int64, weight float64) error {
	return r.setField(ctx, userID, "weight", weight)
}

// SetHeight persists the height profile field.
func (r *UsersRepo) SetHeight(ctx context.Context, userID int64, height float64) error {
	return r.setField(ctx, userID, "height", height)
}

// SetProfile upserts all four profile fields in one statement.
func (r *UsersRepo) SetProfile(ctx context.Context, userID int64, gender models.Gender, weight, height float64, level string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, gender, weight, height, level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			gender = EXCLUDED.gender,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			level = EXCLUDED.level,
			updated_at = NOW()`,
		userID, string(gender), weight, height, level)
	if err != nil {
		return fmt.Errorf("users: set profile for %d: %w", userID, err)
	}
	return nil
}

// SetLevel persists the training level profile field.
func (r *UsersRepo) SetLevel(ctx context.Context, userID int64, level string) error {
	return r.setField(ctx, userID, "level", level)
}

// setField upserts a single profile column. The column name comes from the
// fixed setter set above, never from user input.
func (r *UsersRepo) setField(ctx context.Context, userID int64, column string, value interface{}) error {
	query := fmt.Sprintf(`
		INSERT INTO users (id, %s)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = NOW()`,
		column, column, column)
	if _, err := r.db.ExecContext(ctx, query, userID, value); err != nil {
		return fmt.Errorf("users: set %s for %d: %w", column, userID, err)
	}
	return nil
}
