package fitness

import "fmt"

// BMICategory is a body-mass-index band.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Недостаточный вес"
	BMINormal      BMICategory = "Нормальный вес"
	BMIOverweight  BMICategory = "Избыточный вес"
	BMIObese       BMICategory = "Ожирение"
)

// BMI returns weight(kg) / height(m)^2 for a height given in centimeters.
func BMI(weight, height float64) float64 {
	if weight <= 0 || height <= 0 {
		return 0
	}
	meters := height / 100
	return weight / (meters * meters)
}

// FormatBMI renders a BMI value to one decimal place.
func FormatBMI(bmi float64) string {
	return fmt.Sprintf("%.1f", bmi)
}

// CategoryForBMI maps a BMI value to its band. Each band is inclusive on the
// lower bound and exclusive on the upper, except the open-ended last one.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
