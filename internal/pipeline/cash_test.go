package pipeline

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/whatif/internal/model"
)

func TestCashForecastFold(t *testing.T) {
	s := model.Series{
		Labels:   []string{"Jan", "Feb"},
		Revenue:  []int64{100, 100},
		Expenses: []int64{80, 120},
	}
	got := CashForecast(s, 1000)
	if !reflect.DeepEqual(got, []int64{1020, 1000}) {
		t.Fatalf("balances = %v, want [1020 1000]", got)
	}
	if again := CashForecast(s, 1000); !reflect.DeepEqual(got, again) {
		t.Fatal("CashForecast is not deterministic")
	}
	if empty := CashForecast(model.Series{}, 1000); len(empty) != 0 {
		t.Fatalf("empty series = %v", empty)
	}
}

func TestRunwayInfoFirstNonPositive(t *testing.T) {
	r := RunwayInfo([]string{"Jan", "Feb", "Mar"}, []int64{500, -10, 5})
	if !r.Exhausted || r.Months != 2 || r.Label != "Feb" {
		t.Fatalf("runway = %+v, want month 2 (Feb)", r)
	}
	if got, want := r.Text(), "Runway: ~2 months (≈ Feb)"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestRunwayInfoZeroCountsAsExhausted(t *testing.T) {
	r := RunwayInfo([]string{"Jan", "Feb"}, []int64{0, 10})
	if !r.Exhausted || r.Months != 1 {
		t.Fatalf("runway = %+v, want month 1", r)
	}
}

func TestRunwayInfoNeverExhausted(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f"}
	r := RunwayInfo(labels, []int64{1, 2, 3, 4, 5, 6})
	if r.Exhausted {
		t.Fatalf("runway unexpectedly exhausted: %+v", r)
	}
	if got, want := r.Text(), "Runway: > 6 months"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}

	empty := RunwayInfo(nil, nil)
	if empty.Text() != "Runway: > 0 months" {
		t.Fatalf("empty text = %q", empty.Text())
	}
}
