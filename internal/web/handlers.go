package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/m3rciful/trainbot/internal/catalog"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/services"
)

// defaultUserID stands in for the Telegram identity when the web app
// does not pass one. The original web client works the same way.
const defaultUserID = 1

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func userIDFromQuery(r *http.Request) int64 {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		raw = r.URL.Query().Get("userId")
	}
	if raw == "" {
		return defaultUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return defaultUserID
	}
	return id
}

func (s *Server) healthy(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type profileResponse struct {
	ID     int64          `json:"id"`
	Gender *models.Gender `json:"gender"`
	Weight *float64       `json:"weight"`
	Height *float64       `json:"height"`
	Level  *string        `json:"level"`
}

func toProfileResponse(u *models.User) profileResponse {
	return profileResponse{
		ID:     u.ID,
		Gender: u.Gender,
		Weight: u.Weight,
		Height: u.Height,
		Level:  u.Level,
	}
}

func (s *Server) profileGET(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), userIDFromQuery(r))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		errorJSON(w, http.StatusNotFound, "Profile not found")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

type profileRequest struct {
	UserID int64   `json:"userId"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Level  string  `json:"level"`
}

func (s *Server) profilePOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Gender == "" || req.Weight == 0 || req.Height == 0 || req.Level == "" {
		errorJSON(w, http.StatusBadRequest, "All fields are required")
		return
	}
	// The web form is stricter than the dialog bounds.
	if req.Weight < 30 || req.Weight > 200 {
		errorJSON(w, http.StatusBadRequest, "Weight must be between 30 and 200 kg")
		return
	}
	if req.Height < 120 || req.Height > 250 {
		errorJSON(w, http.StatusBadRequest, "Height must be between 120 and 250 cm")
		return
	}
	gender, ok := models.ParseGender(req.Gender)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Unknown gender")
		return
	}
	if _, ok := fitness.ParseLevel(req.Level); !ok {
		errorJSON(w, http.StatusBadRequest, "Unknown training level")
		return
	}
	userID := req.UserID
	if userID <= 0 {
		userID = defaultUserID
	}

	if err := s.users.SaveProfile(r.Context(), userID, gender, req.Weight, req.Height, req.Level); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	user, err := s.users.Get(r.Context(), userID)
	if err != nil || user == nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

type cycleResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Direction   string            `json:"direction"`
	Gender      models.Gender     `json:"gender"`
	Level       string            `json:"level"`
	Period      string            `json:"period"`
	Description string            `json:"description"`
	Exercises   []models.Exercise `json:"exercises"`
}

func (s *Server) cyclesGET(w http.ResponseWriter, _ *http.Request) {
	cycles := catalog.List()
	out := make([]cycleResponse, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, cycleResponse{
			ID:          c.ID,
			Name:        c.Name,
			Direction:   c.Direction,
			Gender:      c.Gender,
			Level:       c.Level,
			Period:      c.Period,
			Description: catalog.Description(c),
			Exercises:   c.Exercises,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type planResponse struct {
	ID        int64             `json:"id"`
	PublicID  string            `json:"publicId"`
	CycleID   int64             `json:"cycleId"`
	Name      string            `json:"name"`
	Direction string            `json:"direction"`
	Level     string            `json:"level"`
	Period    string            `json:"period"`
	Duration  string            `json:"duration"`
	Frequency string            `json:"frequency"`
	Exercises []models.Exercise `json:"exercises"`
	Notes     []string          `json:"notes"`
}

func toPlanResponse(p *models.WorkoutPlan) planResponse {
	return planResponse{
		ID:        p.ID,
		PublicID:  p.PublicID,
		CycleID:   p.CycleID,
		Name:      p.Name,
		Direction: p.Direction,
		Level:     p.Level,
		Period:    p.Period,
		Duration:  p.Duration,
		Frequency: p.Frequency,
		Exercises: p.Exercises,
		Notes:     p.Notes,
	}
}

type planRequest struct {
	CycleID int64 `json:"cycleId"`
	UserID  int64 `json:"userId"`
}

func (s *Server) workoutPlanPOST(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.CycleID == 0 || req.UserID == 0 {
		errorJSON(w, http.StatusBadRequest, "Cycle ID and User ID are required")
		return
	}

	plan, err := s.plans.Generate(r.Context(), req.UserID, req.CycleID)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		errorJSON(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, services.ErrCycleNotFound):
		errorJSON(w, http.StatusNotFound, "Cycle not found")
		return
	case errors.Is(err, fitness.ErrProfileIncomplete):
		errorJSON(w, http.StatusBadRequest, "Profile is incomplete")
		return
	case err != nil:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

func planIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) workoutPlanGET(w http.ResponseWriter, r *http.Request) {
	planID, ok := planIDFromPath(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Invalid plan ID")
		return
	}
	plan, err := s.plans.Get(r.Context(), userIDFromQuery(r), planID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if plan == nil {
		errorJSON(w, http.StatusNotFound, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

type sessionResponse struct {
	Week      int               `json:"week"`
	Day       int               `json:"day"`
	Name      string            `json:"name"`
	Exercises []models.Exercise `json:"exercises"`
	Notes     []string          `json:"notes"`
}

func (s *Server) workoutScheduleGET(w http.ResponseWriter, r *http.Request) {
	planID, ok := planIDFromPath(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Invalid plan ID")
		return
	}
	sessions, err := s.plans.Schedule(r.Context(), userIDFromQuery(r), planID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if sessions == nil {
		errorJSON(w, http.StatusNotFound, "Plan not found")
		return
	}
	out := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, sessionResponse{
			Week:      sess.Week,
			Day:       sess.Day,
			Name:      sess.Name,
			Exercises: sess.Exercises,
			Notes:     sess.Notes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) workoutPlanDELETE(w http.ResponseWriter, r *http.Request) {
	planID, ok := planIDFromPath(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "Invalid plan ID")
		return
	}
	deleted, err := s.plans.Delete(r.Context(), userIDFromQuery(r), planID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		errorJSON(w, http.StatusNotFound, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) workoutPlansGET(w http.ResponseWriter, r *http.Request) {
	plans, err := s.plans.List(r.Context(), userIDFromQuery(r))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]planResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

type maxWeightResponse struct {
	ExerciseName string  `json:"exerciseName"`
	MaxWeight    float64 `json:"maxWeight"`
}

func (s *Server) maxWeightsGET(w http.ResponseWriter, r *http.Request) {
	maxes, err := s.maxes.List(r.Context(), userIDFromQuery(r))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]maxWeightResponse, 0, len(maxes))
	for _, m := range maxes {
		out = append(out, maxWeightResponse{ExerciseName: m.ExerciseName, MaxWeight: m.MaxWeight})
	}
	writeJSON(w, http.StatusOK, out)
}

type maxWeightRequest struct {
	UserID       int64   `json:"userId"`
	ExerciseName string  `json:"exerciseName"`
	MaxWeight    float64 `json:"maxWeight"`
	Reps         int     `json:"reps"`
}

func (s *Server) maxWeightPOST(w http.ResponseWriter, r *http.Request) {
	var req maxWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserID == 0 || req.ExerciseName == "" || req.MaxWeight == 0 {
		errorJSON(w, http.StatusBadRequest, "User ID, exercise name and max weight are required")
		return
	}
	reps := req.Reps
	if reps <= 0 {
		reps = 1
	}

	max, err := s.maxes.Record(r.Context(), req.UserID, req.ExerciseName, req.MaxWeight, reps)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMax) {
			errorJSON(w, http.StatusBadRequest, "Weight and reps must be positive")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	suggestions, err := s.maxes.Suggest(r.Context(), req.UserID, req.ExerciseName)
	if err != nil {
		suggestions = nil
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exerciseName": req.ExerciseName,
		"maxWeight":    max,
		"suggestions":  suggestions,
	})
}
