package fitness

import (
	"fmt"
	"math"
	"strings"

	"github.com/m3rciful/trainbot/internal/models"
)

const (
	defaultWeeks        = 8
	defaultDaysPerWeek  = 3
	adaptationWeeks     = 2
	peakWeekStart       = 6
	minSetsInAdaptation = 2
)

// sessionTypes returns the training day rotation for a cycle direction.
func sessionTypes(direction string) []string {
	switch direction {
	case "Троеборье":
		return []string{"Силовая", "Техническая", "Восстановительная"}
	case "Двоеборье":
		return []string{"Силовая", "Техническая"}
	case "Жим лежа":
		return []string{"Жимовая", "Вспомогательная"}
	default:
		return []string{"Силовая", "Общая"}
	}
}

// durationWeeks converts a duration label like "8-12 недель" into a week
// count, using the rounded mean of the range.
func durationWeeks(duration string) int {
	var low, high int
	if _, err := fmt.Sscanf(duration, "%d-%d", &low, &high); err == nil && high >= low {
		return int(math.Round(float64(low+high) / 2))
	}
	return defaultWeeks
}

// frequencyDays converts a frequency label like "3-4 раза в неделю" into a
// training-day count, using the lower bound.
func frequencyDays(frequency string) int {
	var low, high int
	if _, err := fmt.Sscanf(frequency, "%d-%d", &low, &high); err == nil && low > 0 {
		return low
	}
	return defaultDaysPerWeek
}

// GenerateSessions expands a plan into the full schedule of per-week,
// per-day sessions with weekly progression applied. Like GeneratePlan it is
// deterministic.
func GenerateSessions(plan *models.WorkoutPlan, profile Profile) []models.WorkoutSession {
	if plan == nil {
		return nil
	}

	weeks := durationWeeks(plan.Duration)
	days := frequencyDays(plan.Frequency)
	types := sessionTypes(plan.Direction)

	sessions := make([]models.WorkoutSession, 0, weeks*days)
	for week := 1; week <= weeks; week++ {
		for day := 1; day <= days; day++ {
			sessionType := types[(day-1)%len(types)]
			sessions = append(sessions, models.WorkoutSession{
				Week:      week,
				Day:       day,
				Name:      fmt.Sprintf("%s тренировка (Неделя %d, День %d)", sessionType, week, day),
				Exercises: sessionExercises(plan.Exercises, sessionType, week),
				Notes:     sessionNotes(sessionType, week, profile),
			})
		}
	}
	return sessions
}

// sessionExercises picks the subset of plan exercises matching a session
// type and applies the weekly progression.
func sessionExercises(exercises []models.Exercise, sessionType string, week int) []models.Exercise {
	selected := selectForType(exercises, sessionType)
	adapted := make([]models.Exercise, 0, len(selected))
	for _, ex := range selected {
		adapted = append(adapted, adaptForWeek(ex, week))
	}
	return adapted
}

func selectForType(exercises []models.Exercise, sessionType string) []models.Exercise {
	filter := func(keep func(models.Exercise) bool) []models.Exercise {
		var out []models.Exercise
		for _, ex := range exercises {
			if keep(ex) {
				out = append(out, ex)
			}
		}
		return out
	}

	switch sessionType {
	case "Силовая":
		return filter(func(ex models.Exercise) bool {
			return strings.Contains(ex.Name, "Приседания") ||
				strings.Contains(ex.Name, "Жим лежа") ||
				strings.Contains(ex.Name, "Становая тяга")
		})
	case "Техническая":
		return filter(func(ex models.Exercise) bool {
			return strings.Contains(ex.Name, "Жим стоя") ||
				strings.Contains(ex.Name, "Подтягивания")
		})
	case "Восстановительная":
		if len(exercises) > 2 {
			return exercises[:2]
		}
		return exercises
	case "Жимовая":
		return filter(func(ex models.Exercise) bool {
			return strings.Contains(ex.Name, "Жим")
		})
	case "Вспомогательная":
		return filter(func(ex models.Exercise) bool {
			return !strings.Contains(ex.Name, "Приседания") &&
				!strings.Contains(ex.Name, "Становая тяга")
		})
	default:
		return exercises
	}
}

// adaptForWeek shifts volume and intensity across the cycle: lighter during
// the adaptation weeks, heavier from the peak week on.
func adaptForWeek(ex models.Exercise, week int) models.Exercise {
	adapted := ex
	switch {
	case week <= adaptationWeeks:
		if ex.Sets-1 >= minSetsInAdaptation {
			adapted.Sets = ex.Sets - 1
		} else {
			adapted.Sets = minSetsInAdaptation
		}
		adapted.Intensity = ParseIntensity(ex.Intensity).Shift(-10, intensityFloor, intensityCeil).String()
	case week >= peakWeekStart:
		adapted.Sets = ex.Sets + 1
		adapted.Intensity = ParseIntensity(ex.Intensity).Shift(+5, intensityFloor, intensityCeil).String()
	}
	return adapted
}

func sessionNotes(sessionType string, week int, profile Profile) []string {
	var notes []string

	switch sessionType {
	case "Силовая":
		notes = append(notes, "💪 Фокус на максимальных весах и технике")
		if week >= peakWeekStart {
			notes = append(notes, "🔥 Пиковая неделя - максимальная интенсивность")
		}
	case "Техническая":
		notes = append(notes,
			"🎯 Работа над техникой выполнения",
			"📝 Записывайте ощущения и прогресс",
		)
	case "Восстановительная":
		notes = append(notes,
			"🔄 Легкая тренировка для восстановления",
			"💤 Следите за качеством сна",
		)
	}

	if profile.Level == LevelBeginner {
		notes = append(notes, "⚠️ Начинайте с разминки 10-15 минут")
	}

	return notes
}
