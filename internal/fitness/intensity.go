package fitness

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	percentRangeRe  = regexp.MustCompile(`^(\d+)-(\d+)%$`)
	percentSingleRe = regexp.MustCompile(`^(\d+)%$`)
	// anyPercentRangeRe matches a percentage range anywhere inside an
	// authored intensity string, for extraction purposes.
	anyPercentRangeRe  = regexp.MustCompile(`(\d+)-(\d+)%`)
	anyPercentSingleRe = regexp.MustCompile(`(\d+)%`)
)

// Intensity is a typed view of an authored intensity string: either a
// percentage (single value or range) or a literal such as "Собственный вес"
// that percentage rules pass through untouched.
type Intensity struct {
	Low     int
	High    int
	Literal string
	percent bool
}

// ParseIntensity converts an authored intensity string into a typed value.
// Strings that are not a bare "NN%" or "NN-MM%" are kept as literals.
func ParseIntensity(raw string) Intensity {
	if m := percentRangeRe.FindStringSubmatch(raw); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return Intensity{Low: low, High: high, percent: true}
	}
	if m := percentSingleRe.FindStringSubmatch(raw); m != nil {
		v, _ := strconv.Atoi(m[1])
		return Intensity{Low: v, High: v, percent: true}
	}
	return Intensity{Literal: raw}
}

// Percent reports whether the intensity is a percentage value.
func (i Intensity) Percent() bool {
	return i.percent
}

// Shift moves both percentage bounds by delta, clamping each into
// [floor, ceil]. Literal intensities are returned unchanged.
func (i Intensity) Shift(delta, floor, ceil int) Intensity {
	if !i.percent {
		return i
	}
	clamp := func(v int) int {
		if v < floor {
			return floor
		}
		if v > ceil {
			return ceil
		}
		return v
	}
	return Intensity{Low: clamp(i.Low + delta), High: clamp(i.High + delta), percent: true}
}

// String renders the intensity back into its authored form.
func (i Intensity) String() string {
	if !i.percent {
		return i.Literal
	}
	if i.Low == i.High {
		return fmt.Sprintf("%d%%", i.Low)
	}
	return fmt.Sprintf("%d-%d%%", i.Low, i.High)
}

// AveragePercent extracts a representative percentage from an authored
// intensity string: the mean of a "NN-MM%" range, the value of a bare
// "NN%", or ok=false when the string carries no percentage at all.
func AveragePercent(raw string) (float64, bool) {
	if m := anyPercentRangeRe.FindStringSubmatch(raw); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return float64(low+high) / 2, true
	}
	if m := anyPercentSingleRe.FindStringSubmatch(raw); m != nil {
		v, _ := strconv.Atoi(m[1])
		return float64(v), true
	}
	return 0, false
}
