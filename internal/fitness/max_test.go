package fitness

import "testing"

func TestMaxFromWeightAndReps(t *testing.T) {
	cases := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{100, 1, 103.3},
		{100, 5, 116.7},
		{80, 8, 101.3},
		{0, 5, 0},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := MaxFromWeightAndReps(tc.weight, tc.reps); got != tc.want {
			t.Errorf("MaxFromWeightAndReps(%v, %d) = %v, want %v", tc.weight, tc.reps, got, tc.want)
		}
	}
}

func TestWeightFromMax(t *testing.T) {
	cases := []struct {
		max     float64
		percent float64
		want    float64
	}{
		{100, 80, 80},
		{142.5, 85, 121.1},
		{100, 0, 0},
		{0, 80, 0},
	}
	for _, tc := range cases {
		if got := WeightFromMax(tc.max, tc.percent); got != tc.want {
			t.Errorf("WeightFromMax(%v, %v) = %v, want %v", tc.max, tc.percent, got, tc.want)
		}
	}
}

func TestWorkingWeight(t *testing.T) {
	// 80-90% averages to 85%.
	if got := WorkingWeight(100, "80-90%"); got != 85 {
		t.Errorf("WorkingWeight(100, 80-90%%) = %v, want 85", got)
	}
	if got := WorkingWeight(100, "Собственный вес"); got != 0 {
		t.Errorf("WorkingWeight with bodyweight intensity = %v, want 0", got)
	}
}

func TestRecommendedPercentages(t *testing.T) {
	base := RecommendedPercentages("Приседания", LevelCandidateMaster)
	if base[0] != 85 {
		t.Errorf("base squat percentage = %v, want 85", base[0])
	}

	beginner := RecommendedPercentages("Приседания", LevelBeginner)
	if beginner[0] != 75 || beginner[3] != 60 {
		t.Errorf("beginner squat percentages = %v, want shifted -10 with floor 60", beginner)
	}

	elite := RecommendedPercentages("Подтягивания", LevelMaster)
	if elite[0] != 95 || elite[1] != 95 {
		t.Errorf("elite pull-up percentages = %v, want capped at 95", elite)
	}

	unknown := RecommendedPercentages("Гиперэкстензия", LevelFirstCategory)
	if unknown[0] != 80 {
		t.Errorf("unknown exercise percentages = %v, want defaults", unknown)
	}
}
