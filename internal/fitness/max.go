package fitness

import "math"

// WeightFromMax converts a personal maximum and an intensity percentage
// into a working weight, rounded to 0.1 kg. Absent inputs yield 0.
func WeightFromMax(maxWeight, percent float64) float64 {
	if maxWeight <= 0 || percent <= 0 {
		return 0
	}
	return math.Round(maxWeight*percent/100*10) / 10
}

// MaxFromWeightAndReps estimates a one-rep maximum from a working set using
// the Epley formula: max = weight * (1 + reps/30), rounded to 0.1 kg.
func MaxFromWeightAndReps(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return math.Round(weight*(1+float64(reps)/30)*10) / 10
}

// WorkingWeight resolves the suggested weight for an exercise from the
// user's stored maximum and the authored intensity string. It returns 0
// when the intensity carries no percentage (e.g. bodyweight work).
func WorkingWeight(maxWeight float64, intensity string) float64 {
	percent, ok := AveragePercent(intensity)
	if !ok {
		return 0
	}
	return WeightFromMax(maxWeight, percent)
}

var basePercentages = map[string][]float64{
	"Приседания":    {85, 80, 75, 70},
	"Жим лежа":      {85, 80, 75, 70},
	"Становая тяга": {85, 80, 75, 70},
	"Жим стоя":      {80, 75, 70, 65},
	"Подтягивания":  {100, 90, 80, 70},
}

var defaultPercentages = []float64{80, 75, 70, 65}

// RecommendedPercentages returns the suggested working percentages for an
// exercise, adjusted by training level.
func RecommendedPercentages(exerciseName string, level Level) []float64 {
	base, ok := basePercentages[exerciseName]
	if !ok {
		base = defaultPercentages
	}

	out := make([]float64, len(base))
	switch {
	case level == LevelBeginner:
		for i, p := range base {
			out[i] = math.Max(60, p-10)
		}
	case level.Elite():
		for i, p := range base {
			out[i] = math.Min(95, p+5)
		}
	default:
		copy(out, base)
	}
	return out
}
