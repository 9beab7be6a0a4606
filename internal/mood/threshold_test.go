package mood

import "testing"

func TestBreakThresholdTable(t *testing.T) {
	cases := []struct {
		sensitivity float64
		want        float64
	}{
		{0, 90},
		{40, 90},
		{41, 80},
		{50, 80},
		{60, 80},
		{61, 60},
		{80, 60},
		{81, 40},
		{95, 40},
		{96, 0},
		{100, 0},
	}
	for _, tc := range cases {
		if got := BreakThreshold(tc.sensitivity); got != tc.want {
			t.Fatalf("sensitivity %.0f: expected %.0f, got %.0f", tc.sensitivity, tc.want, got)
		}
	}
}

func TestBreakThresholdNonIncreasing(t *testing.T) {
	prev := BreakThreshold(0)
	for s := 1.0; s <= 100.0; s++ {
		got := BreakThreshold(s)
		if got > prev {
			t.Fatalf("threshold rose from %.0f to %.0f at sensitivity %.0f", prev, got, s)
		}
		prev = got
	}
}
