package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/catalog"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/storage"
)

// Precondition errors for plan operations.
var (
	ErrCycleNotFound = errors.New("services: cycle not found")
	ErrUserNotFound  = errors.New("services: user not found")
)

// Plans generates workout plans and persists them with their expanded
// training schedule.
type Plans struct {
	users    *storage.UsersRepo
	plans    *storage.PlansRepo
	sessions *storage.SessionsRepo
}

// NewPlans constructs the plan service.
func NewPlans(users *storage.UsersRepo, plans *storage.PlansRepo, sessions *storage.SessionsRepo) *Plans {
	return &Plans{users: users, plans: plans, sessions: sessions}
}

// Generate builds a plan for the user from a catalog cycle and persists
// the plan together with its session schedule. The generation itself is
// deterministic; only identity and timestamps come from storage.
func (s *Plans) Generate(ctx context.Context, userID, cycleID int64) (*models.WorkoutPlan, error) {
	start := time.Now()

	cycle, ok := catalog.ByID(cycleID)
	if !ok {
		return nil, ErrCycleNotFound
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile, ok := ProfileOf(user)
	if !ok {
		return nil, fitness.ErrProfileIncomplete
	}

	plan, err := fitness.GeneratePlan(cycle, profile)
	if err != nil {
		return nil, err
	}
	plan.UserID = userID

	if err := s.plans.Create(ctx, plan); err != nil {
		s.logError(ctx, "plans.generate", userID, err)
		return nil, err
	}
	sessions := fitness.GenerateSessions(plan, profile)
	if err := s.sessions.InsertBatch(ctx, plan.ID, sessions); err != nil {
		s.logError(ctx, "plans.generate", userID, err)
		return nil, err
	}

	logger.Info(ctx, "service.plans", "plans.generate",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.Int64("cycle_id", cycleID),
		slog.Int64("plan_id", plan.ID),
		slog.Int("sessions", len(sessions)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return plan, nil
}

// List returns the user's stored plans, newest first.
func (s *Plans) List(ctx context.Context, userID int64) ([]models.WorkoutPlan, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		s.logError(ctx, "plans.list", userID, err)
		return nil, err
	}
	logger.Debug(ctx, "service.plans", "plans.list",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.Int("plans_total", len(plans)),
	)
	return plans, nil
}

// Get returns one of the user's plans, or nil when absent.
func (s *Plans) Get(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error) {
	plan, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		s.logError(ctx, "plans.get", userID, err)
		return nil, err
	}
	return plan, nil
}

// Schedule returns the stored session schedule of a plan owned by the
// user. Absent plans yield an empty schedule.
func (s *Plans) Schedule(ctx context.Context, userID, planID int64) ([]models.WorkoutSession, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return s.sessions.ListByPlan(ctx, planID)
}

// Delete removes one of the user's plans along with its sessions.
func (s *Plans) Delete(ctx context.Context, userID, planID int64) (bool, error) {
	deleted, err := s.plans.Delete(ctx, userID, planID)
	if err != nil {
		s.logError(ctx, "plans.delete", userID, err)
		return false, err
	}
	logger.Info(ctx, "service.plans", "plans.delete",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.Int64("plan_id", planID),
		slog.Bool("deleted", deleted),
	)
	return deleted, nil
}

func (s *Plans) logError(ctx context.Context, event string, userID int64, err error) {
	logger.Error(ctx, "service.plans", event,
		slog.String("status", "error"),
		slog.Int64("user_id", userID),
		slog.String("error", err.Error()),
	)
}
