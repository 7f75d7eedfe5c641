package fitness

import "testing"

func TestBMI(t *testing.T) {
	bmi := BMI(75, 180)
	if got := FormatBMI(bmi); got != "23.1" {
		t.Errorf("FormatBMI(BMI(75, 180)) = %q, want %q", got, "23.1")
	}
	if got := CategoryForBMI(bmi); got != BMINormal {
		t.Errorf("CategoryForBMI(%v) = %q, want %q", bmi, got, BMINormal)
	}
}

func TestCategoryBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want BMICategory
	}{
		{16, BMIUnderweight},
		{18.4, BMIUnderweight},
		{18.5, BMINormal},
		{24.9, BMINormal},
		{25, BMIOverweight},
		{29.9, BMIOverweight},
		{30, BMIObese},
		{42, BMIObese},
	}
	for _, tc := range cases {
		if got := CategoryForBMI(tc.bmi); got != tc.want {
			t.Errorf("CategoryForBMI(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestBMIZeroInputs(t *testing.T) {
	if got := BMI(0, 180); got != 0 {
		t.Errorf("BMI(0, 180) = %v, want 0", got)
	}
	if got := BMI(75, 0); got != 0 {
		t.Errorf("BMI(75, 0) = %v, want 0", got)
	}
}
