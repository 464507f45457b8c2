package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1,000",
		120000:  "$120,000",
		1234567: "$1,234,567",
		-1234:   "-$1,234",
		-999:    "-$999",

		math.MaxInt64: "$9,223,372,036,854,775,807",
		math.MinInt64: "-$9,223,372,036,854,775,808",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumberExtremes(t *testing.T) {
	if got := FormatNumber(math.MinInt64); got != "-9,223,372,036,854,775,808" {
		t.Fatalf("FormatNumber(MinInt64) = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber(-1000) = %q", got)
	}
	if got := FormatCompactMoney(math.MinInt64); got != "-$9223372036.9B" {
		t.Fatalf("FormatCompactMoney(MinInt64) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	if got := FormatCompact(45000); got != "45.0K" {
		t.Fatalf("FormatCompact(45000) = %q", got)
	}
	if got := FormatCompactMoney(-2_500_000); got != "-$2.5M" {
		t.Fatalf("FormatCompactMoney(-2.5M) = %q", got)
	}
	if got := FormatCompact(12); got != "12" {
		t.Fatalf("FormatCompact(12) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(10); got != "10%" {
		t.Fatalf("FormatPercent(10) = %q", got)
	}
	if got := FormatPercent(2.5); got != "2.5%" {
		t.Fatalf("FormatPercent(2.5) = %q", got)
	}
	if got := FormatSignedPercent(10); got != "+10%" {
		t.Fatalf("FormatSignedPercent(10) = %q", got)
	}
	if got := FormatSignedPercent(-5); got != "-5%" {
		t.Fatalf("FormatSignedPercent(-5) = %q", got)
	}
	if got := FormatSignedPercent(0); got != "0%" {
		t.Fatalf("FormatSignedPercent(0) = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(1500, 1000); got != "+$500" {
		t.Fatalf("FormatDelta up = %q", got)
	}
	if got := FormatDelta(1000, 3000); got != "-$2,000" {
		t.Fatalf("FormatDelta down = %q", got)
	}
}
