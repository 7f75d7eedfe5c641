package fitness

import (
	"fmt"
	"regexp"
	"strconv"
)

var repRangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

// RepRange is a typed view of an authored repetition string. Strings that
// are not a plain "N-M" range (e.g. "10-30 сек") stay literal and are not
// touched by widening rules.
type RepRange struct {
	Low     int
	High    int
	Literal string
	ranged  bool
}

// ParseReps converts an authored repetition string into a typed value.
func ParseReps(raw string) RepRange {
	if m := repRangeRe.FindStringSubmatch(raw); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return RepRange{Low: low, High: high, ranged: true}
	}
	return RepRange{Literal: raw}
}

// Ranged reports whether the value is a numeric range.
func (r RepRange) Ranged() bool {
	return r.ranged
}

// Widen increases the bounds by lo and hi respectively. Literal values are
// returned unchanged.
func (r RepRange) Widen(lo, hi int) RepRange {
	if !r.ranged {
		return r
	}
	return RepRange{Low: r.Low + lo, High: r.High + hi, ranged: true}
}

// String renders the range back into its authored form.
func (r RepRange) String() string {
	if !r.ranged {
		return r.Literal
	}
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}
