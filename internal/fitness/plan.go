package fitness

import (
	"errors"

	"github.com/m3rciful/trainbot/internal/models"
)

// ErrProfileIncomplete is returned when plan generation is requested for a
// profile that is missing gender, weight, height, or level.
var ErrProfileIncomplete = errors.New("fitness: profile is incomplete")

const (
	defaultDuration  = "8-12 недель"
	defaultFrequency = "3-4 раза в неделю"

	// lightWeightThreshold is the bodyweight below which rep ranges are
	// widened regardless of level.
	lightWeightThreshold = 70

	intensityFloor = 50
	intensityCeil  = 100
)

// Profile is the resolved user profile the generator works with. All fields
// must be set; callers enforce completeness before generating.
type Profile struct {
	Gender models.Gender
	Weight float64
	Height float64
	Level  Level
}

// Complete reports whether every profile field carries a valid value.
func (p Profile) Complete() bool {
	return p.Gender.Valid() && p.Weight > 0 && p.Height > 0 && p.Level.Valid()
}

// CycleDuration resolves the duration label for a cycle period. Unknown
// periods fall back to the default range.
func CycleDuration(period string) string {
	switch period {
	case "Силовой":
		return "8-12 недель"
	case "Выносливость":
		return "6-10 недель"
	case "Выход на пик":
		return "4-6 недель"
	case "Массонабор":
		return "12-16 недель"
	default:
		return defaultDuration
	}
}

// TrainingFrequency resolves the weekly frequency label for a cycle
// direction. Unknown directions fall back to the default.
func TrainingFrequency(direction string) string {
	switch direction {
	case "Троеборье":
		return "3-4 раза в неделю"
	case "Жим лежа":
		return "2-3 раза в неделю"
	case "Армрестлинг":
		return "3-4 раза в неделю"
	case "Бодибилдинг":
		return "4-6 раз в неделю"
	default:
		return defaultFrequency
	}
}

// DefaultExercises returns the built-in exercise set used when a cycle
// template carries no exercise list.
func DefaultExercises() []models.Exercise {
	return []models.Exercise{
		{Name: "Приседания", Sets: 3, Reps: "8-12", Intensity: "70-80%", Description: "Базовое упражнение для развития ног"},
		{Name: "Жим лежа", Sets: 3, Reps: "8-12", Intensity: "70-80%", Description: "Базовое упражнение для развития груди"},
		{Name: "Становая тяга", Sets: 3, Reps: "6-10", Intensity: "75-85%", Description: "Базовое упражнение для развития спины"},
		{Name: "Жим стоя", Sets: 3, Reps: "8-12", Intensity: "65-75%", Description: "Упражнение для развития плеч"},
		{Name: "Подтягивания", Sets: 3, Reps: "6-12", Intensity: "Собственный вес", Description: "Упражнение для развития спины и бицепса"},
	}
}

// GeneratePlan derives a workout plan from a cycle template and a complete
// profile. The function is pure: identical inputs produce identical plans.
// Identity fields (user, public id) and persistence are the caller's
// concern.
func GeneratePlan(cycle models.Cycle, profile Profile) (*models.WorkoutPlan, error) {
	if !profile.Complete() {
		return nil, ErrProfileIncomplete
	}

	templates := cycle.Exercises
	if len(templates) == 0 {
		templates = DefaultExercises()
	}

	exercises := make([]models.Exercise, 0, len(templates))
	for _, ex := range templates {
		exercises = append(exercises, adjustExercise(ex, profile))
	}

	return &models.WorkoutPlan{
		CycleID:   cycle.ID,
		Name:      cycle.Name,
		Direction: cycle.Direction,
		Level:     cycle.Level,
		Period:    cycle.Period,
		Duration:  CycleDuration(cycle.Period),
		Frequency: TrainingFrequency(cycle.Direction),
		Exercises: exercises,
		Notes:     planNotes(cycle, profile),
	}, nil
}

// adjustExercise applies the level and bodyweight tuning rules to a single
// exercise template. Rules compose: a light beginner gets both rep
// adjustments.
func adjustExercise(ex models.Exercise, profile Profile) models.Exercise {
	adjusted := ex
	intensity := ParseIntensity(ex.Intensity)
	reps := ParseReps(ex.Reps)

	switch {
	case profile.Level == LevelBeginner:
		intensity = intensity.Shift(-10, intensityFloor, intensityCeil)
		reps = reps.Widen(2, 3)
	case profile.Level.Elite():
		intensity = intensity.Shift(+5, intensityFloor, intensityCeil)
	}

	if profile.Weight < lightWeightThreshold {
		reps = reps.Widen(1, 2)
	}

	adjusted.Intensity = intensity.String()
	adjusted.Reps = reps.String()
	return adjusted
}

func planNotes(cycle models.Cycle, profile Profile) []string {
	var notes []string

	if cycle.AdditionalInfo != "" {
		notes = append(notes, cycle.AdditionalInfo)
	}

	bmi := BMI(profile.Weight, profile.Height)
	switch CategoryForBMI(bmi) {
	case BMIUnderweight:
		notes = append(notes, "💡 Рекомендуется увеличить калорийность питания для набора массы")
	case BMIObese:
		notes = append(notes, "💡 Рекомендуется сочетать силовые тренировки с кардио")
	}

	switch {
	case profile.Level == LevelBeginner:
		notes = append(notes,
			"🎯 Фокус на технике выполнения упражнений",
			"⏰ Увеличьте время отдыха между подходами до 2-3 минут",
		)
	case profile.Level.Elite():
		notes = append(notes,
			"🏆 Период подготовки к соревнованиям - максимальная концентрация",
			"📊 Ведите детальный дневник тренировок",
		)
	}

	switch cycle.Period {
	case "Массонабор":
		notes = append(notes,
			"🍽️ Питание: 1.6-2.2г белка на кг веса",
			"😴 Сон: минимум 8 часов в сутки",
		)
	case "Выносливость":
		notes = append(notes,
			"💪 Фокус на объеме тренировок",
			"⏱️ Короткие перерывы между подходами (60-90 сек)",
		)
	}

	return notes
}
