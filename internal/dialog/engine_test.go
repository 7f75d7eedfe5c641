package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m3rciful/trainbot/core/telegram/state"
	"github.com/m3rciful/trainbot/internal/models"
)

type fakeStore struct {
	users map[int64]*models.User
	fail  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int64]*models.User)}
}

func (s *fakeStore) user(userID int64) *models.User {
	u, ok := s.users[userID]
	if !ok {
		u = &models.User{ID: userID}
		s.users[userID] = u
	}
	return u
}

func (s *fakeStore) Get(_ context.Context, userID int64) (*models.User, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return s.user(userID), nil
}

func (s *fakeStore) SetGender(_ context.Context, userID int64, gender models.Gender) error {
	if s.fail != nil {
		return s.fail
	}
	s.user(userID).Gender = &gender
	return nil
}

func (s *fakeStore) SetWeight(_ context.Context, userID int64, weight float64) error {
	if s.fail != nil {
		return s.fail
	}
	s.user(userID).Weight = &weight
	return nil
}

func (s *fakeStore) SetHeight(_ context.Context, userID int64, height float64) error {
	if s.fail != nil {
		return s.fail
	}
	s.user(userID).Height = &height
	return nil
}

func (s *fakeStore) SetLevel(_ context.Context, userID int64, level string) error {
	if s.fail != nil {
		return s.fail
	}
	s.user(userID).Level = &level
	return nil
}

func newTestEngine() (*Engine, *fakeStore) {
	store := newFakeStore()
	return New(state.NewMemoryManager(0), store), store
}

const testUser int64 = 42

func mustText(t *testing.T, e *Engine, text string) Reply {
	t.Helper()
	reply, handled, err := e.HandleText(context.Background(), testUser, text)
	if err != nil {
		t.Fatalf("HandleText(%q): %v", text, err)
	}
	if !handled {
		t.Fatalf("HandleText(%q) not handled", text)
	}
	return reply
}

func mustCallback(t *testing.T, e *Engine, data string) Reply {
	t.Helper()
	reply, handled, err := e.HandleCallback(context.Background(), testUser, data)
	if err != nil {
		t.Fatalf("HandleCallback(%q): %v", data, err)
	}
	if !handled {
		t.Fatalf("HandleCallback(%q) not handled", data)
	}
	return reply
}

func TestFullDialogScenario(t *testing.T) {
	e, store := newTestEngine()
	ctx := context.Background()

	reply, err := e.Start(ctx, testUser)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.Contains(reply.Text, "Шаг 1 из 4") {
		t.Errorf("start prompt = %q, want step 1 of 4", reply.Text)
	}
	if reply.Keyboard != KeyboardGender {
		t.Errorf("start keyboard = %v, want gender", reply.Keyboard)
	}
	if !e.InDialog(testUser) {
		t.Fatal("InDialog = false after Start")
	}

	reply = mustCallback(t, e, "dialog_gender_male")
	if !strings.Contains(reply.Text, "Шаг 2 из 4") {
		t.Errorf("gender reply = %q, want step 2 of 4", reply.Text)
	}

	reply = mustText(t, e, "75")
	if !strings.Contains(reply.Text, "Шаг 3 из 4") {
		t.Errorf("weight reply = %q, want step 3 of 4", reply.Text)
	}

	reply = mustText(t, e, "180")
	if !strings.Contains(reply.Text, "Шаг 4 из 4") {
		t.Errorf("height reply = %q, want step 4 of 4", reply.Text)
	}
	if reply.Keyboard != KeyboardLevel {
		t.Errorf("height reply keyboard = %v, want level", reply.Keyboard)
	}

	reply = mustCallback(t, e, "dialog_level_candidate-master")
	for _, want := range []string{"23.1", "Мужской", "75 кг", "180 см", "КМС", "Нормальный вес"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("completion message missing %q:\n%s", want, reply.Text)
		}
	}

	if e.InDialog(testUser) {
		t.Error("InDialog = true after completion")
	}

	user := store.user(testUser)
	if !user.ProfileComplete() {
		t.Errorf("profile incomplete after dialog: %+v", user)
	}
	if *user.Gender != models.GenderMale || *user.Weight != 75 || *user.Height != 180 || *user.Level != "candidate-master" {
		t.Errorf("persisted profile = %+v", user)
	}
}

func TestStartWithCompleteProfile(t *testing.T) {
	e, store := newTestEngine()
	gender := models.GenderFemale
	weight, height := 60.0, 165.0
	level := "first-category"
	store.users[testUser] = &models.User{
		ID: testUser, Gender: &gender, Weight: &weight, Height: &height, Level: &level,
	}

	reply, err := e.Start(context.Background(), testUser)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.Contains(reply.Text, "уже заполнен") {
		t.Errorf("reply = %q, want already-complete notice", reply.Text)
	}
	if e.InDialog(testUser) {
		t.Error("InDialog = true, want no dialog for complete profile")
	}
}

func TestStartReplacesOpenDialog(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustCallback(t, e, "dialog_gender_male")
	mustText(t, e, "75")

	// Restart discards progress and returns to the first step.
	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if _, handled, _ := e.HandleText(ctx, testUser, "180"); handled {
		t.Error("text handled in gender step after restart")
	}
	mustCallback(t, e, "dialog_gender_female")
}

func TestWeightValidation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"abc", msgWeightNotNumber},
		{"", msgWeightNotNumber},
		{"75kg", msgWeightNotNumber},
		{"0", msgWeightOutOfRange},
		{"-5", msgWeightOutOfRange},
		{"500", msgWeightOutOfRange},
		{"1200", msgWeightOutOfRange},
	}
	for _, tc := range cases {
		e, _ := newTestEngine()
		ctx := context.Background()
		if _, err := e.Start(ctx, testUser); err != nil {
			t.Fatalf("Start: %v", err)
		}
		mustCallback(t, e, "dialog_gender_male")

		reply := mustText(t, e, tc.input)
		if reply.Text != tc.want {
			t.Errorf("weight %q reply = %q, want %q", tc.input, reply.Text, tc.want)
		}
		// State is preserved: a valid retry still advances.
		reply = mustText(t, e, "75.5")
		if !strings.Contains(reply.Text, "Шаг 3 из 4") {
			t.Errorf("retry after %q did not advance: %q", tc.input, reply.Text)
		}
	}
}

func TestHeightValidation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"tall", msgHeightNotNumber},
		{"0", msgHeightOutOfRange},
		{"300", msgHeightOutOfRange},
	}
	for _, tc := range cases {
		e, _ := newTestEngine()
		ctx := context.Background()
		if _, err := e.Start(ctx, testUser); err != nil {
			t.Fatalf("Start: %v", err)
		}
		mustCallback(t, e, "dialog_gender_male")
		mustText(t, e, "75")

		reply := mustText(t, e, tc.input)
		if reply.Text != tc.want {
			t.Errorf("height %q reply = %q, want %q", tc.input, reply.Text, tc.want)
		}
	}
}

func TestUnrecognizedTokensUnhandled(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("Start: %v", err)
	}

	cases := []string{
		"dialog_gender_other",
		"dialog_level_master",
		"cycle_3",
		"free text",
	}
	for _, data := range cases {
		if _, handled, err := e.HandleCallback(ctx, testUser, data); handled || err != nil {
			t.Errorf("HandleCallback(%q) = handled=%v err=%v, want unhandled", data, handled, err)
		}
	}
	if _, handled, _ := e.HandleText(ctx, testUser, "male"); handled {
		t.Error("free text handled during gender step")
	}
}

func TestCancelIdempotent(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("Start: %v", err)
	}

	e.Cancel(testUser)
	if e.InDialog(testUser) {
		t.Fatal("InDialog = true after Cancel")
	}
	e.Cancel(testUser)
	if e.InDialog(testUser) {
		t.Fatal("InDialog = true after second Cancel")
	}
}

func TestCompletionTerminal(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustCallback(t, e, "dialog_gender_male")
	mustText(t, e, "75")
	mustText(t, e, "180")
	mustCallback(t, e, "dialog_level_master")

	if _, handled, _ := e.HandleCallback(ctx, testUser, "dialog_level_master"); handled {
		t.Error("callback handled after completion")
	}
	if _, handled, _ := e.HandleText(ctx, testUser, "75"); handled {
		t.Error("text handled after completion")
	}
}

func TestStoreFailurePreservesState(t *testing.T) {
	e, store := newTestEngine()
	ctx := context.Background()
	if _, err := e.Start(ctx, testUser); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustCallback(t, e, "dialog_gender_male")

	store.fail = errors.New("connection refused")
	reply, handled, err := e.HandleText(ctx, testUser, "75")
	if !handled {
		t.Fatal("store failure not handled")
	}
	if err == nil {
		t.Fatal("store failure returned nil error")
	}
	if reply.Text != msgStoreFailure {
		t.Errorf("failure reply = %q, want generic message", reply.Text)
	}

	// The step was not advanced; a retry succeeds once the store recovers.
	store.fail = nil
	reply = mustText(t, e, "75")
	if !strings.Contains(reply.Text, "Шаг 3 из 4") {
		t.Errorf("retry after store failure did not advance: %q", reply.Text)
	}
}

func TestStartStoreFailure(t *testing.T) {
	e, store := newTestEngine()
	store.fail = errors.New("connection refused")

	reply, err := e.Start(context.Background(), testUser)
	if err == nil {
		t.Fatal("Start with failing store returned nil error")
	}
	if reply.Text != msgStoreFailure {
		t.Errorf("failure reply = %q", reply.Text)
	}
	if e.InDialog(testUser) {
		t.Error("dialog opened despite store failure")
	}
}
