package fitness

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/m3rciful/trainbot/internal/models"
)

func testCycle() models.Cycle {
	return models.Cycle{
		ID:        1,
		Name:      "СРЦ1",
		Direction: "Троеборье",
		Gender:    models.GenderMale,
		Level:     "II разряд – КМС",
		Period:    "Силовой",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Приседания", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим лежа", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Подтягивания", Sets: 3, Reps: "6-12", Intensity: "Собственный вес"},
		},
	}
}

func testProfile(level Level, weight float64) Profile {
	return Profile{Gender: models.GenderMale, Weight: weight, Height: 180, Level: level}
}

func TestGeneratePlanDeterministic(t *testing.T) {
	cycle := testCycle()
	profile := testProfile(LevelCandidateMaster, 82)

	first, err := GeneratePlan(cycle, profile)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	second, err := GeneratePlan(cycle, profile)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("plans differ between identical calls (-first +second):\n%s", diff)
	}
}

func TestGeneratePlanIncompleteProfile(t *testing.T) {
	profile := testProfile(LevelBeginner, 75)
	profile.Height = 0
	if _, err := GeneratePlan(testCycle(), profile); err != ErrProfileIncomplete {
		t.Fatalf("GeneratePlan with incomplete profile: err = %v, want ErrProfileIncomplete", err)
	}
}

func TestGeneratePlanBeginnerAdjustments(t *testing.T) {
	plan, err := GeneratePlan(testCycle(), testProfile(LevelBeginner, 82))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	squat := plan.Exercises[0]
	if squat.Intensity != "70-80%" {
		t.Errorf("beginner intensity = %q, want %q", squat.Intensity, "70-80%")
	}
	if squat.Reps != "7-11" {
		t.Errorf("beginner reps = %q, want %q", squat.Reps, "7-11")
	}

	pullups := plan.Exercises[2]
	if pullups.Intensity != "Собственный вес" {
		t.Errorf("bodyweight intensity changed: %q", pullups.Intensity)
	}
}

func TestGeneratePlanEliteAdjustments(t *testing.T) {
	cycle := testCycle()
	cycle.Exercises = []models.Exercise{
		{Name: "Приседания", Sets: 3, Reps: "1-3", Intensity: "90-100%"},
	}

	for _, level := range []Level{LevelMaster, LevelInternationalMaster} {
		plan, err := GeneratePlan(cycle, testProfile(level, 95))
		if err != nil {
			t.Fatalf("GeneratePlan(%s): %v", level, err)
		}
		if got := plan.Exercises[0].Intensity; got != "95-100%" {
			t.Errorf("%s intensity = %q, want %q", level, got, "95-100%")
		}
		if got := plan.Exercises[0].Reps; got != "1-3" {
			t.Errorf("%s reps = %q, want unchanged %q", level, got, "1-3")
		}
	}
}

func TestGeneratePlanLightWeightComposes(t *testing.T) {
	plan, err := GeneratePlan(testCycle(), testProfile(LevelBeginner, 65))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	// +2/+3 for beginner, then +1/+2 for bodyweight below 70.
	if got := plan.Exercises[0].Reps; got != "8-13" {
		t.Errorf("light beginner reps = %q, want %q", got, "8-13")
	}

	plan, err = GeneratePlan(testCycle(), testProfile(LevelCandidateMaster, 65))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if got := plan.Exercises[0].Reps; got != "6-10" {
		t.Errorf("light non-beginner reps = %q, want %q", got, "6-10")
	}
}

func TestGeneratePlanDefaultExercises(t *testing.T) {
	cycle := testCycle()
	cycle.Exercises = nil

	plan, err := GeneratePlan(cycle, testProfile(LevelIntermediate, 82))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(plan.Exercises) != len(DefaultExercises()) {
		t.Fatalf("default exercise count = %d, want %d", len(plan.Exercises), len(DefaultExercises()))
	}
	if plan.Exercises[0].Name != "Приседания" {
		t.Errorf("first default exercise = %q", plan.Exercises[0].Name)
	}
}

func TestGeneratePlanNotes(t *testing.T) {
	cycle := testCycle()
	cycle.Period = "Массонабор"
	cycle.AdditionalInfo = "Пристальное внимание на диету и режим."

	plan, err := GeneratePlan(cycle, testProfile(LevelBeginner, 82))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.Notes[0] != cycle.AdditionalInfo {
		t.Errorf("first note = %q, want cycle info verbatim", plan.Notes[0])
	}
	wantContains := []string{
		"Фокус на технике",
		"белка на кг веса",
		"минимум 8 часов",
	}
	for _, want := range wantContains {
		if !containsNote(plan.Notes, want) {
			t.Errorf("notes missing %q: %v", want, plan.Notes)
		}
	}
}

func TestLookupDefaults(t *testing.T) {
	if got := CycleDuration("Неизвестный период"); got != defaultDuration {
		t.Errorf("CycleDuration(unknown) = %q, want default", got)
	}
	if got := TrainingFrequency("Неизвестное направление"); got != defaultFrequency {
		t.Errorf("TrainingFrequency(unknown) = %q, want default", got)
	}
	if got := CycleDuration("Выход на пик"); got != "4-6 недель" {
		t.Errorf("CycleDuration(peak) = %q", got)
	}
	if got := TrainingFrequency("Бодибилдинг"); got != "4-6 раз в неделю" {
		t.Errorf("TrainingFrequency(bodybuilding) = %q", got)
	}
}

func containsNote(notes []string, substr string) bool {
	for _, note := range notes {
		if strings.Contains(note, substr) {
			return true
		}
	}
	return false
}
