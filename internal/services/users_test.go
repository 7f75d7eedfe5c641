package services

import (
	"context"
	"errors"
	"testing"

	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestSetterValidation(t *testing.T) {
	// Invalid input is rejected before any storage call, so a service
	// without a repository is enough here.
	s := NewUsers(nil)
	ctx := context.Background()

	if err := s.SetGender(ctx, 1, "other"); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("SetGender(other) = %v, want ErrInvalidGender", err)
	}
	if err := s.SetWeight(ctx, 1, 0); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("SetWeight(0) = %v, want ErrInvalidWeight", err)
	}
	if err := s.SetWeight(ctx, 1, 500); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("SetWeight(500) = %v, want ErrInvalidWeight", err)
	}
	if err := s.SetHeight(ctx, 1, 300); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("SetHeight(300) = %v, want ErrInvalidHeight", err)
	}
	if err := s.SetLevel(ctx, 1, "КМС"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SetLevel(КМС) = %v, want ErrInvalidLevel", err)
	}
}

func TestProfileOf(t *testing.T) {
	complete := &models.User{
		ID:     1,
		Gender: ptr(models.GenderMale),
		Weight: ptr(75.0),
		Height: ptr(180.0),
		Level:  ptr("candidate-master"),
	}
	profile, ok := ProfileOf(complete)
	if !ok {
		t.Fatal("ProfileOf(complete) not ok")
	}
	if profile.Level != fitness.LevelCandidateMaster || profile.Weight != 75 {
		t.Errorf("profile = %+v", profile)
	}

	missing := &models.User{ID: 2, Gender: ptr(models.GenderMale)}
	if _, ok := ProfileOf(missing); ok {
		t.Error("ProfileOf(incomplete) ok")
	}

	badLevel := &models.User{
		ID:     3,
		Gender: ptr(models.GenderMale),
		Weight: ptr(75.0),
		Height: ptr(180.0),
		Level:  ptr("МСМК"),
	}
	if _, ok := ProfileOf(badLevel); ok {
		t.Error("ProfileOf(unknown level) ok")
	}
}

func TestBMISummary(t *testing.T) {
	u := &models.User{Weight: ptr(75.0), Height: ptr(180.0)}
	got, ok := BMISummary(u)
	if !ok || got != "23.1 (Нормальный вес)" {
		t.Errorf("BMISummary = (%q, %v)", got, ok)
	}

	if _, ok := BMISummary(&models.User{Weight: ptr(75.0)}); ok {
		t.Error("BMISummary without height ok")
	}
	if _, ok := BMISummary(nil); ok {
		t.Error("BMISummary(nil) ok")
	}
}
