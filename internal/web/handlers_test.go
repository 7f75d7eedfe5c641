package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/services"
)

func ptr[T any](v T) *T { return &v }

type fakeUsers struct {
	users map[int64]*models.User
	saved []profileRequest
}

func (f *fakeUsers) Get(_ context.Context, userID int64) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUsers) SaveProfile(_ context.Context, userID int64, gender models.Gender, weight, height float64, level string) error {
	f.saved = append(f.saved, profileRequest{
		UserID: userID,
		Gender: string(gender),
		Weight: weight,
		Height: height,
		Level:  level,
	})
	f.users[userID] = &models.User{
		ID:     userID,
		Gender: &gender,
		Weight: &weight,
		Height: &height,
		Level:  &level,
	}
	return nil
}

type fakePlans struct {
	generateErr error
	plans       []models.WorkoutPlan
}

func (f *fakePlans) Generate(_ context.Context, userID, cycleID int64) (*models.WorkoutPlan, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &models.WorkoutPlan{
		UserID:    userID,
		CycleID:   cycleID,
		PublicID:  "4d5c1f6a-0000-0000-0000-000000000000",
		Name:      "СРЦ1",
		Direction: "Троеборье",
		Exercises: []models.Exercise{{Name: "Приседания", Sets: 4, Reps: "5-8", Intensity: "80-90%"}},
		Notes:     []string{"Фокус на технике"},
	}, nil
}

func (f *fakePlans) List(_ context.Context, _ int64) ([]models.WorkoutPlan, error) {
	return f.plans, nil
}

func (f *fakePlans) Get(_ context.Context, userID, planID int64) (*models.WorkoutPlan, error) {
	for i := range f.plans {
		if f.plans[i].ID == planID && f.plans[i].UserID == userID {
			return &f.plans[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlans) Schedule(ctx context.Context, userID, planID int64) ([]models.WorkoutSession, error) {
	plan, _ := f.Get(ctx, userID, planID)
	if plan == nil {
		return nil, nil
	}
	return []models.WorkoutSession{
		{PlanID: planID, Week: 1, Day: 1, Name: "Силовая тренировка (Неделя 1, День 1)"},
	}, nil
}

func (f *fakePlans) Delete(_ context.Context, userID, planID int64) (bool, error) {
	for i := range f.plans {
		if f.plans[i].ID == planID && f.plans[i].UserID == userID {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMaxes struct {
	recorded map[string]float64
}

func (f *fakeMaxes) Record(_ context.Context, _ int64, exerciseName string, weight float64, reps int) (float64, error) {
	if weight <= 0 || reps <= 0 {
		return 0, services.ErrInvalidMax
	}
	max := weight
	if reps > 1 {
		max = fitness.MaxFromWeightAndReps(weight, reps)
	}
	f.recorded[exerciseName] = max
	return max, nil
}

func (f *fakeMaxes) List(_ context.Context, _ int64) ([]models.MaxWeight, error) {
	out := make([]models.MaxWeight, 0, len(f.recorded))
	for name, max := range f.recorded {
		out = append(out, models.MaxWeight{ExerciseName: name, MaxWeight: max})
	}
	return out, nil
}

func (f *fakeMaxes) Suggest(_ context.Context, _ int64, exerciseName string) ([]services.Suggestion, error) {
	if _, ok := f.recorded[exerciseName]; !ok {
		return nil, nil
	}
	return []services.Suggestion{{Percent: 80, Weight: 80}}, nil
}

func newTestServer() (*Server, *fakeUsers, *fakePlans, *fakeMaxes) {
	users := &fakeUsers{users: map[int64]*models.User{}}
	plans := &fakePlans{}
	maxes := &fakeMaxes{recorded: map[string]float64{}}
	return NewServer(users, plans, maxes), users, plans, maxes
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestHealthy(t *testing.T) {
	srv, _, _, _ := newTestServer()
	rec, body := doJSON(t, srv.Routes(), http.MethodGet, "/api/healthy", "")
	if rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("healthy = %d %v", rec.Code, body)
	}
}

func TestProfileGET(t *testing.T) {
	srv, users, _, _ := newTestServer()
	h := srv.Routes()

	rec, body := doJSON(t, h, http.MethodGet, "/api/profile?user_id=42", "")
	if rec.Code != http.StatusNotFound || body["message"] != "Profile not found" {
		t.Errorf("missing profile = %d %v", rec.Code, body)
	}

	users.users[42] = &models.User{
		ID:     42,
		Gender: ptr(models.GenderMale),
		Weight: ptr(75.0),
		Height: ptr(180.0),
		Level:  ptr("candidate-master"),
	}
	rec, body = doJSON(t, h, http.MethodGet, "/api/profile?user_id=42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status = %d", rec.Code)
	}
	if body["gender"] != "male" || body["weight"] != 75.0 || body["level"] != "candidate-master" {
		t.Errorf("profile body = %v", body)
	}
}

func TestProfilePOSTValidation(t *testing.T) {
	srv, users, _, _ := newTestServer()
	h := srv.Routes()

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{
			name:    "missing fields",
			body:    `{"gender":"male","weight":75}`,
			status:  http.StatusBadRequest,
			message: "All fields are required",
		},
		{
			name:    "weight below band",
			body:    `{"gender":"male","weight":25,"height":180,"level":"beginner"}`,
			status:  http.StatusBadRequest,
			message: "Weight must be between 30 and 200 kg",
		},
		{
			name:    "weight above band",
			body:    `{"gender":"male","weight":250,"height":180,"level":"beginner"}`,
			status:  http.StatusBadRequest,
			message: "Weight must be between 30 and 200 kg",
		},
		{
			name:    "height out of band",
			body:    `{"gender":"male","weight":75,"height":100,"level":"beginner"}`,
			status:  http.StatusBadRequest,
			message: "Height must be between 120 and 250 cm",
		},
		{
			name:    "unknown gender",
			body:    `{"gender":"other","weight":75,"height":180,"level":"beginner"}`,
			status:  http.StatusBadRequest,
			message: "Unknown gender",
		},
		{
			name:    "unknown level",
			body:    `{"gender":"male","weight":75,"height":180,"level":"КМС"}`,
			status:  http.StatusBadRequest,
			message: "Unknown training level",
		},
		{
			name:    "invalid json",
			body:    `{gender}`,
			status:  http.StatusBadRequest,
			message: "Invalid JSON body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doJSON(t, h, http.MethodPost, "/api/profile", tt.body)
			if rec.Code != tt.status || body["message"] != tt.message {
				t.Errorf("got %d %v, want %d %q", rec.Code, body, tt.status, tt.message)
			}
		})
	}
	if len(users.saved) != 0 {
		t.Errorf("invalid requests reached the service: %v", users.saved)
	}
}

func TestProfilePOSTSaves(t *testing.T) {
	srv, users, _, _ := newTestServer()
	h := srv.Routes()

	rec, body := doJSON(t, h, http.MethodPost, "/api/profile",
		`{"userId":42,"gender":"female","weight":60,"height":165,"level":"first-category"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save profile = %d %v", rec.Code, body)
	}
	if len(users.saved) != 1 || users.saved[0].UserID != 42 || users.saved[0].Gender != "female" {
		t.Errorf("saved = %v", users.saved)
	}
	if body["gender"] != "female" || body["height"] != 165.0 {
		t.Errorf("response = %v", body)
	}

	// Without an explicit user the demo identity is used.
	rec, _ = doJSON(t, h, http.MethodPost, "/api/profile",
		`{"gender":"male","weight":75,"height":180,"level":"beginner"}`)
	if rec.Code != http.StatusOK || users.saved[1].UserID != defaultUserID {
		t.Errorf("default identity save = %d %v", rec.Code, users.saved)
	}
}

func TestCyclesGET(t *testing.T) {
	srv, _, _, _ := newTestServer()
	rec, _ := doJSON(t, srv.Routes(), http.MethodGet, "/api/cycles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("cycles status = %d", rec.Code)
	}
	var cycles []cycleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cycles); err != nil {
		t.Fatalf("decode cycles: %v", err)
	}
	if len(cycles) != 8 {
		t.Fatalf("len(cycles) = %d, want 8", len(cycles))
	}
	if cycles[0].Name != "СРЦ1" || len(cycles[0].Exercises) == 0 {
		t.Errorf("first cycle = %+v", cycles[0])
	}
}

func TestWorkoutPlanPOST(t *testing.T) {
	srv, _, plans, _ := newTestServer()
	h := srv.Routes()

	rec, body := doJSON(t, h, http.MethodPost, "/api/workout-plan", `{"cycleId":1}`)
	if rec.Code != http.StatusBadRequest || body["message"] != "Cycle ID and User ID are required" {
		t.Errorf("missing user = %d %v", rec.Code, body)
	}

	plans.generateErr = services.ErrUserNotFound
	rec, body = doJSON(t, h, http.MethodPost, "/api/workout-plan", `{"cycleId":1,"userId":42}`)
	if rec.Code != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("unknown user = %d %v", rec.Code, body)
	}

	plans.generateErr = services.ErrCycleNotFound
	rec, body = doJSON(t, h, http.MethodPost, "/api/workout-plan", `{"cycleId":99,"userId":42}`)
	if rec.Code != http.StatusNotFound || body["message"] != "Cycle not found" {
		t.Errorf("unknown cycle = %d %v", rec.Code, body)
	}

	plans.generateErr = fitness.ErrProfileIncomplete
	rec, body = doJSON(t, h, http.MethodPost, "/api/workout-plan", `{"cycleId":1,"userId":42}`)
	if rec.Code != http.StatusBadRequest || body["message"] != "Profile is incomplete" {
		t.Errorf("incomplete profile = %d %v", rec.Code, body)
	}

	plans.generateErr = nil
	rec, body = doJSON(t, h, http.MethodPost, "/api/workout-plan", `{"cycleId":1,"userId":42}`)
	if rec.Code != http.StatusOK || body["name"] != "СРЦ1" || body["cycleId"] != 1.0 {
		t.Errorf("generated plan = %d %v", rec.Code, body)
	}
}

func TestWorkoutPlanByID(t *testing.T) {
	srv, _, plans, _ := newTestServer()
	h := srv.Routes()
	plans.plans = []models.WorkoutPlan{{ID: 7, UserID: 42, Name: "СРЦ2", Direction: "Жим лежа"}}

	rec, body := doJSON(t, h, http.MethodGet, "/api/workout-plans/7?user_id=42", "")
	if rec.Code != http.StatusOK || body["name"] != "СРЦ2" {
		t.Errorf("get plan = %d %v", rec.Code, body)
	}

	// Ownership is scoped: another user cannot see the plan.
	rec, body = doJSON(t, h, http.MethodGet, "/api/workout-plans/7?user_id=1", "")
	if rec.Code != http.StatusNotFound || body["message"] != "Plan not found" {
		t.Errorf("foreign plan = %d %v", rec.Code, body)
	}

	rec, _ = doJSON(t, h, http.MethodGet, "/api/workout-plans/7/schedule?user_id=42", "")
	if rec.Code != http.StatusOK {
		t.Errorf("schedule = %d", rec.Code)
	}
	var sessions []sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Week != 1 {
		t.Errorf("schedule body = %v", sessions)
	}

	rec, body = doJSON(t, h, http.MethodDelete, "/api/workout-plans/7?user_id=42", "")
	if rec.Code != http.StatusOK || body["status"] != "deleted" {
		t.Errorf("delete = %d %v", rec.Code, body)
	}
	rec, _ = doJSON(t, h, http.MethodDelete, "/api/workout-plans/7?user_id=42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeated delete = %d", rec.Code)
	}
}

func TestMaxWeights(t *testing.T) {
	srv, _, _, maxes := newTestServer()
	h := srv.Routes()

	rec, body := doJSON(t, h, http.MethodPost, "/api/max-weights", `{"userId":42,"maxWeight":100}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing exercise = %d %v", rec.Code, body)
	}

	rec, body = doJSON(t, h, http.MethodPost, "/api/max-weights",
		`{"userId":42,"exerciseName":"Жим лежа","maxWeight":100,"reps":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("record = %d %v", rec.Code, body)
	}
	// Epley estimate for 100x5.
	if got := maxes.recorded["Жим лежа"]; got != 116.7 {
		t.Errorf("recorded max = %v, want 116.7", got)
	}
	if _, ok := body["suggestions"]; !ok {
		t.Errorf("response missing suggestions: %v", body)
	}

	rec, _ = doJSON(t, h, http.MethodGet, "/api/max-weights?user_id=42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []maxWeightResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ExerciseName != "Жим лежа" {
		t.Errorf("list = %v", list)
	}
}

func TestRecoverPanic(t *testing.T) {
	srv, _, _, _ := newTestServer()
	h := srv.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthy", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d", rec.Code)
	}
}
