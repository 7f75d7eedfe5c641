package fitness

import "testing"

func TestParseIntensityRoundTrip(t *testing.T) {
	cases := []struct {
		raw     string
		percent bool
	}{
		{"80-90%", true},
		{"70%", true},
		{"Собственный вес", false},
		{"Собственный вес + отягощение", false},
		{"Максимальное время", false},
		{"", false},
	}
	for _, tc := range cases {
		got := ParseIntensity(tc.raw)
		if got.Percent() != tc.percent {
			t.Errorf("ParseIntensity(%q).Percent() = %v, want %v", tc.raw, got.Percent(), tc.percent)
		}
		if got.String() != tc.raw {
			t.Errorf("ParseIntensity(%q).String() = %q, want round trip", tc.raw, got.String())
		}
	}
}

func TestIntensityShift(t *testing.T) {
	cases := []struct {
		raw   string
		delta int
		want  string
	}{
		{"80-90%", -10, "70-80%"},
		{"90-100%", +5, "95-100%"},
		{"80%", -10, "70%"},
		{"55%", -10, "50%"},
		{"50-55%", -10, "50%"},
		{"100%", +5, "100%"},
		{"Собственный вес", -10, "Собственный вес"},
	}
	for _, tc := range cases {
		got := ParseIntensity(tc.raw).Shift(tc.delta, intensityFloor, intensityCeil).String()
		if got != tc.want {
			t.Errorf("Shift(%q, %d) = %q, want %q", tc.raw, tc.delta, got, tc.want)
		}
	}
}

func TestAveragePercent(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"80-90%", 85, true},
		{"75%", 75, true},
		{"Собственный вес", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := AveragePercent(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("AveragePercent(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRepRangeWiden(t *testing.T) {
	cases := []struct {
		raw    string
		lo, hi int
		want   string
	}{
		{"5-8", 2, 3, "7-11"},
		{"5-8", 1, 2, "6-10"},
		{"10-30 сек", 2, 3, "10-30 сек"},
		{"8", 1, 2, "8"},
	}
	for _, tc := range cases {
		got := ParseReps(tc.raw).Widen(tc.lo, tc.hi).String()
		if got != tc.want {
			t.Errorf("Widen(%q, %d, %d) = %q, want %q", tc.raw, tc.lo, tc.hi, got, tc.want)
		}
	}
}
