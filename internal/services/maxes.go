package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/storage"
)

// ErrInvalidMax rejects non-positive weight or rep inputs.
var ErrInvalidMax = errors.New("services: weight and reps must be positive")

// Maxes tracks personal maximums and derives working-weight suggestions.
type Maxes struct {
	users *storage.UsersRepo
	repo  *storage.MaxesRepo
}

// NewMaxes constructs the max-weight service.
func NewMaxes(users *storage.UsersRepo, repo *storage.MaxesRepo) *Maxes {
	return &Maxes{users: users, repo: repo}
}

// Record stores an estimated one-rep maximum from a working set. A single
// rep records the weight as-is; more reps go through the Epley estimate.
func (s *Maxes) Record(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) (float64, error) {
	if weight <= 0 || reps <= 0 {
		return 0, ErrInvalidMax
	}
	max := weight
	if reps > 1 {
		max = fitness.MaxFromWeightAndReps(weight, reps)
	}

	if err := s.repo.Upsert(ctx, userID, exerciseName, max); err != nil {
		logger.Error(ctx, "service.maxes", "maxes.record",
			slog.String("status", "error"),
			slog.Int64("user_id", userID),
			slog.String("exercise", exerciseName),
			slog.String("error", err.Error()),
		)
		return 0, err
	}
	logger.Info(ctx, "service.maxes", "maxes.record",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("exercise", exerciseName),
		slog.Float64("max_weight", max),
	)
	return max, nil
}

// List returns all recorded maximums for a user.
func (s *Maxes) List(ctx context.Context, userID int64) ([]models.MaxWeight, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Suggestion is a working-weight recommendation at one intensity step.
type Suggestion struct {
	Percent float64 `json:"percent"`
	Weight  float64 `json:"weight"`
}

// Suggest derives working weights for an exercise from the stored maximum
// and the user's level. Nil is returned when no maximum is recorded.
func (s *Maxes) Suggest(ctx context.Context, userID int64, exerciseName string) ([]Suggestion, error) {
	max, err := s.repo.Get(ctx, userID, exerciseName)
	if err != nil {
		return nil, err
	}
	if max == nil {
		return nil, nil
	}

	level := fitness.LevelIntermediate
	if user, err := s.users.Get(ctx, userID); err == nil && user != nil && user.Level != nil {
		if parsed, ok := fitness.ParseLevel(*user.Level); ok {
			level = parsed
		}
	}

	percentages := fitness.RecommendedPercentages(exerciseName, level)
	out := make([]Suggestion, 0, len(percentages))
	for _, p := range percentages {
		out = append(out, Suggestion{
			Percent: p,
			Weight:  fitness.WeightFromMax(max.MaxWeight, p),
		})
	}
	return out, nil
}
