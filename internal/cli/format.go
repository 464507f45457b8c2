// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCompact formats an amount with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M", 1234567890 -> "1.2B"
func FormatCompact(n int64) string {
	abs := math.Abs(float64(n))

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatMoney formats a whole-dollar amount with thousands separators and no
// fraction digits. Negative amounts keep the sign in front: "-$1,234".
func FormatMoney(n int64) string {
	if n < 0 {
		return "-$" + groupDigits(magnitude(n))
	}
	return "$" + groupDigits(magnitude(n))
}

// FormatCompactMoney is FormatMoney for narrow columns: "$45.0K".
func FormatCompactMoney(n int64) string {
	s := FormatCompact(n)
	if n < 0 {
		return "-$" + s[1:]
	}
	return "$" + s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + groupDigits(magnitude(n))
	}
	return groupDigits(magnitude(n))
}

// magnitude returns the unsigned digits of n. math.MinInt64 has no positive
// int64 counterpart, so the conversion goes through uint64.
func magnitude(n int64) string {
	if n < 0 {
		return strconv.FormatUint(uint64(-(n+1))+1, 10)
	}
	return strconv.FormatInt(n, 10)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value with the shortest exact decimal.
// e.g., 10 -> "10%", 2.5 -> "2.5%"
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatSignedPercent is FormatPercent with an explicit "+" on positive values.
func FormatSignedPercent(pct float64) string {
	if pct > 0 {
		return "+" + FormatPercent(pct)
	}
	return FormatPercent(pct)
}

// FormatDelta formats the change between two amounts with its sign.
func FormatDelta(current, previous int64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return FormatMoney(delta)
}
