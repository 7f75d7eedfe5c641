package fitness

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want Level
		ok   bool
	}{
		{"beginner", LevelBeginner, true},
		{"candidate-master", LevelCandidateMaster, true},
		{"international-master", LevelInternationalMaster, true},
		{"grandmaster", "", false},
		{"КМС", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelDisplay(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelBeginner, "Начальный"},
		{LevelSecondCategory, "II разряд"},
		{LevelFirstCategory, "I разряд"},
		{LevelCandidateMaster, "КМС"},
		{LevelMaster, "МС"},
		{LevelInternationalMaster, "МСМК"},
		{LevelIntermediate, "Средний уровень"},
	}
	for _, tc := range cases {
		if got := tc.level.Display(); got != tc.want {
			t.Errorf("%s.Display() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestLevelElite(t *testing.T) {
	for _, lvl := range Levels {
		want := lvl == LevelMaster || lvl == LevelInternationalMaster
		if got := lvl.Elite(); got != want {
			t.Errorf("%s.Elite() = %v, want %v", lvl, got, want)
		}
	}
}
