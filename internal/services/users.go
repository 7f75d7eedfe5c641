// Package services wires the domain packages to storage and carries the
// per-operation logging.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/storage"
)

// Validation errors for profile writes.
var (
	ErrInvalidGender = errors.New("services: invalid gender")
	ErrInvalidWeight = errors.New("services: weight must be between 0 and 500")
	ErrInvalidHeight = errors.New("services: height must be between 0 and 300")
	ErrInvalidLevel  = errors.New("services: unknown training level")
)

// Users manages user registration and profile fields. It satisfies the
// dialog engine's profile store.
type Users struct {
	repo *storage.UsersRepo
}

// NewUsers constructs the user service.
func NewUsers(repo *storage.UsersRepo) *Users {
	return &Users{repo: repo}
}

// Register records the Telegram identity of a user on first contact.
func (s *Users) Register(ctx context.Context, u *models.User) error {
	if err := s.repo.Upsert(ctx, u); err != nil {
		s.logError(ctx, "users.register", u.ID, err)
		return err
	}
	logger.Debug(ctx, "service.users", "users.register",
		slog.String("status", "ok"),
		slog.Int64("user_id", u.ID),
	)
	return nil
}

// Get returns the user or nil when unknown.
func (s *Users) Get(ctx context.Context, userID int64) (*models.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logError(ctx, "users.get", userID, err)
		return nil, err
	}
	return u, nil
}

// SetGender validates and persists the gender field.
func (s *Users) SetGender(ctx context.Context, userID int64, gender models.Gender) error {
	if !gender.Valid() {
		return ErrInvalidGender
	}
	return s.setField(ctx, userID, "gender", func() error {
		return s.repo.SetGender(ctx, userID, gender)
	})
}

// SetWeight validates and persists the weight field.
func (s *Users) SetWeight(ctx context.Context, userID int64, weight float64) error {
	if !(weight > 0 && weight < 500) {
		return ErrInvalidWeight
	}
	return s.setField(ctx, userID, "weight", func() error {
		return s.repo.SetWeight(ctx, userID, weight)
	})
}

// SetHeight validates and persists the height field.
func (s *Users) SetHeight(ctx context.Context, userID int64, height float64) error {
	if !(height > 0 && height < 300) {
		return ErrInvalidHeight
	}
	return s.setField(ctx, userID, "height", func() error {
		return s.repo.SetHeight(ctx, userID, height)
	})
}

// SetLevel validates and persists the training level field.
func (s *Users) SetLevel(ctx context.Context, userID int64, level string) error {
	if _, ok := fitness.ParseLevel(level); !ok {
		return ErrInvalidLevel
	}
	return s.setField(ctx, userID, "level", func() error {
		return s.repo.SetLevel(ctx, userID, level)
	})
}

// SaveProfile validates and persists all four profile fields at once.
func (s *Users) SaveProfile(ctx context.Context, userID int64, gender models.Gender, weight, height float64, level string) error {
	if !gender.Valid() {
		return ErrInvalidGender
	}
	if !(weight > 0 && weight < 500) {
		return ErrInvalidWeight
	}
	if !(height > 0 && height < 300) {
		return ErrInvalidHeight
	}
	if _, ok := fitness.ParseLevel(level); !ok {
		return ErrInvalidLevel
	}
	return s.setField(ctx, userID, "profile", func() error {
		return s.repo.SetProfile(ctx, userID, gender, weight, height, level)
	})
}

func (s *Users) setField(ctx context.Context, userID int64, field string, write func() error) error {
	if err := write(); err != nil {
		logger.Error(ctx, "service.users", "users.set_field",
			slog.String("status", "error"),
			slog.Int64("user_id", userID),
			slog.String("field", field),
			slog.String("error", err.Error()),
		)
		return err
	}
	logger.Debug(ctx, "service.users", "users.set_field",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("field", field),
	)
	return nil
}

func (s *Users) logError(ctx context.Context, event string, userID int64, err error) {
	logger.Error(ctx, "service.users", event,
		slog.String("status", "error"),
		slog.Int64("user_id", userID),
		slog.String("error", err.Error()),
	)
}

// BMISummary renders "23.1 (Нормальный вес)" for a complete profile.
func BMISummary(u *models.User) (string, bool) {
	if u == nil || u.Weight == nil || u.Height == nil {
		return "", false
	}
	bmi := fitness.BMI(*u.Weight, *u.Height)
	return fmt.Sprintf("%s (%s)", fitness.FormatBMI(bmi), fitness.CategoryForBMI(bmi)), true
}

// ProfileOf converts a stored user into the generator's profile value.
// The boolean is false when any field is missing or unparseable.
func ProfileOf(u *models.User) (fitness.Profile, bool) {
	if !u.ProfileComplete() {
		return fitness.Profile{}, false
	}
	level, ok := fitness.ParseLevel(*u.Level)
	if !ok {
		return fitness.Profile{}, false
	}
	p := fitness.Profile{
		Gender: *u.Gender,
		Weight: *u.Weight,
		Height: *u.Height,
		Level:  level,
	}
	return p, p.Complete()
}
