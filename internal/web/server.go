// Package web is the companion JSON API used by the Telegram web app.
// It exposes the same profile, cycle and plan operations as the bot.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/services"
)

const defaultTimeout = 10 * time.Second

// UserService is the profile surface the API needs.
type UserService interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	SaveProfile(ctx context.Context, userID int64, gender models.Gender, weight, height float64, level string) error
}

// PlanService generates, lists and deletes workout plans.
type PlanService interface {
	Generate(ctx context.Context, userID, cycleID int64) (*models.WorkoutPlan, error)
	List(ctx context.Context, userID int64) ([]models.WorkoutPlan, error)
	Get(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error)
	Schedule(ctx context.Context, userID, planID int64) ([]models.WorkoutSession, error)
	Delete(ctx context.Context, userID, planID int64) (bool, error)
}

// MaxService records and lists personal maximums.
type MaxService interface {
	Record(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) (float64, error)
	List(ctx context.Context, userID int64) ([]models.MaxWeight, error)
	Suggest(ctx context.Context, userID int64, exerciseName string) ([]services.Suggestion, error)
}

// Server serves the JSON API.
type Server struct {
	users UserService
	plans PlanService
	maxes MaxService
}

// NewServer constructs the API server over the given services.
func NewServer(users UserService, plans PlanService, maxes MaxService) *Server {
	return &Server{users: users, plans: plans, maxes: maxes}
}

// Routes builds the request multiplexer with the shared middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", s.healthy)
	mux.HandleFunc("GET /api/profile", s.profileGET)
	mux.HandleFunc("POST /api/profile", s.profilePOST)
	mux.HandleFunc("GET /api/cycles", s.cyclesGET)
	mux.HandleFunc("POST /api/workout-plan", s.workoutPlanPOST)
	mux.HandleFunc("GET /api/workout-plans", s.workoutPlansGET)
	mux.HandleFunc("GET /api/workout-plans/{id}", s.workoutPlanGET)
	mux.HandleFunc("GET /api/workout-plans/{id}/schedule", s.workoutScheduleGET)
	mux.HandleFunc("DELETE /api/workout-plans/{id}", s.workoutPlanDELETE)
	mux.HandleFunc("GET /api/max-weights", s.maxWeightsGET)
	mux.HandleFunc("POST /api/max-weights", s.maxWeightPOST)

	return s.recoverPanic(s.logRequest(mux))
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts it down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		IdleTimeout:       time.Minute,
		ReadTimeout:       defaultTimeout,
		WriteTimeout:      defaultTimeout,
		ReadHeaderTimeout: time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", addr, err)
	}
	logger.Info(ctx, "web", "web.start", slog.String("addr", listener.Addr().String()))

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "web", "web.shutdown", slog.String("error", err.Error()))
		}
	}()

	if err := srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web: serve: %w", err)
	}
	<-shutdownDone
	logger.Info(ctx, "web", "web.stop")
	return nil
}
