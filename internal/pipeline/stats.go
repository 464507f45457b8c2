package pipeline

import (
	"math"

	"github.com/theirongolddev/whatif/internal/model"
)

// Sum adds up values.
func Sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// AverageRounded returns the mean rounded to the nearest integer, or 0 for
// an empty slice.
func AverageRounded(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	return int64(math.Round(float64(Sum(values)) / float64(len(values))))
}

// SplitPercent returns each value's share of the total as a rounded
// percentage. A zero total yields 0% for every entry.
func SplitPercent(values []int64) []int64 {
	out := make([]int64, len(values))
	total := Sum(values)
	if total == 0 {
		return out
	}
	for i, v := range values {
		out[i] = int64(math.Round(float64(v) / float64(total) * 100))
	}
	return out
}

// ArgMax returns the index of the first largest value, or -1 when empty.
func ArgMax(values []int64) int {
	if len(values) == 0 {
		return -1
	}
	idx := 0
	for i, v := range values[1:] {
		if v > values[idx] {
			idx = i + 1
		}
	}
	return idx
}

// MonthsInLoss counts months where expenses exceed revenue.
func MonthsInLoss(s model.Series) int {
	n := 0
	for _, net := range s.Net() {
		if net < 0 {
			n++
		}
	}
	return n
}

// LastNet returns the final month's revenue minus expenses, or 0 when empty.
func LastNet(s model.Series) int64 {
	net := s.Net()
	if len(net) == 0 {
		return 0
	}
	return net[len(net)-1]
}
