package fitness

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/m3rciful/trainbot/internal/models"
)

func testPlan() *models.WorkoutPlan {
	return &models.WorkoutPlan{
		Name:      "СРЦ1",
		Direction: "Троеборье",
		Period:    "Силовой",
		Duration:  "8-12 недель",
		Frequency: "3-4 раза в неделю",
		Exercises: []models.Exercise{
			{Name: "Приседания", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим лежа", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Подтягивания", Sets: 3, Reps: "6-12", Intensity: "Собственный вес"},
		},
	}
}

func TestGenerateSessionsShape(t *testing.T) {
	sessions := GenerateSessions(testPlan(), testProfile(LevelCandidateMaster, 82))

	// "8-12 недель" averages to 10 weeks, "3-4 раза" trains 3 days.
	if len(sessions) != 30 {
		t.Fatalf("session count = %d, want 30", len(sessions))
	}

	first := sessions[0]
	if first.Week != 1 || first.Day != 1 {
		t.Errorf("first session week/day = %d/%d, want 1/1", first.Week, first.Day)
	}
	if first.Name != "Силовая тренировка (Неделя 1, День 1)" {
		t.Errorf("first session name = %q", first.Name)
	}

	last := sessions[len(sessions)-1]
	if last.Week != 10 || last.Day != 3 {
		t.Errorf("last session week/day = %d/%d, want 10/3", last.Week, last.Day)
	}
}

func TestGenerateSessionsDeterministic(t *testing.T) {
	plan := testPlan()
	profile := testProfile(LevelCandidateMaster, 82)

	first := GenerateSessions(plan, profile)
	second := GenerateSessions(plan, profile)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("sessions differ between identical calls (-first +second):\n%s", diff)
	}
}

func TestGenerateSessionsWeeklyProgression(t *testing.T) {
	sessions := GenerateSessions(testPlan(), testProfile(LevelCandidateMaster, 82))

	byWeek := func(week int) models.WorkoutSession {
		for _, s := range sessions {
			if s.Week == week && s.Day == 1 {
				return s
			}
		}
		t.Fatalf("no session for week %d day 1", week)
		return models.WorkoutSession{}
	}

	adaptation := byWeek(1).Exercises[0]
	if adaptation.Sets != 3 || adaptation.Intensity != "70-80%" {
		t.Errorf("adaptation week: sets=%d intensity=%q, want 3 and 70-80%%", adaptation.Sets, adaptation.Intensity)
	}

	middle := byWeek(4).Exercises[0]
	if middle.Sets != 4 || middle.Intensity != "80-90%" {
		t.Errorf("middle week: sets=%d intensity=%q, want unchanged", middle.Sets, middle.Intensity)
	}

	peak := byWeek(7).Exercises[0]
	if peak.Sets != 5 || peak.Intensity != "85-95%" {
		t.Errorf("peak week: sets=%d intensity=%q, want 5 and 85-95%%", peak.Sets, peak.Intensity)
	}
}

func TestGenerateSessionsTypeSelection(t *testing.T) {
	sessions := GenerateSessions(testPlan(), testProfile(LevelCandidateMaster, 82))

	strength := sessions[0]
	for _, ex := range strength.Exercises {
		if ex.Name == "Подтягивания" {
			t.Errorf("strength session includes technique exercise %q", ex.Name)
		}
	}

	technique := sessions[1]
	if len(technique.Exercises) != 1 || technique.Exercises[0].Name != "Подтягивания" {
		t.Errorf("technique session exercises = %+v", technique.Exercises)
	}

	recovery := sessions[2]
	if len(recovery.Exercises) != 2 {
		t.Errorf("recovery session exercise count = %d, want 2", len(recovery.Exercises))
	}
}

func TestGenerateSessionsBeginnerNote(t *testing.T) {
	sessions := GenerateSessions(testPlan(), testProfile(LevelBeginner, 82))
	if !containsNote(sessions[0].Notes, "разминки") {
		t.Errorf("beginner session notes missing warm-up reminder: %v", sessions[0].Notes)
	}
}

func TestGenerateSessionsNilPlan(t *testing.T) {
	if got := GenerateSessions(nil, testProfile(LevelBeginner, 82)); got != nil {
		t.Errorf("GenerateSessions(nil) = %v, want nil", got)
	}
}
