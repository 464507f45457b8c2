package scenario

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces a control value to a float. Empty, malformed, NaN
// and infinite input all yield 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseInt coerces a control value to a whole number, rounding fractional
// input to the nearest integer. Falls back to 0 like ParseNumber.
func ParseInt(raw string) int64 {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	v := ParseNumber(s)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(math.Round(v))
}

// FormatNumber renders a knob value the way a control would display it:
// the shortest exact decimal, no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
