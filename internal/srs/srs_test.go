package srs

import (
	"math"
	"testing"
)

func TestCalculate_FirstReviewPerfect(t *testing.T) {
	// Fresh item: defaults ease 2.5, interval 1. Quality 5 leaves the
	// penalty term at zero, so ease becomes 2.6 and the fixed
	// graduation step applies.
	interval, ease := Calculate(5, DefaultEaseFactor, DefaultIntervalDays)

	if interval != 3 {
		t.Errorf("interval = %d, want 3", interval)
	}
	if math.Abs(ease-2.6) > 1e-9 {
		t.Errorf("ease = %v, want 2.6", ease)
	}
}

func TestCalculate_FailedRecallResetsInterval(t *testing.T) {
	// Quality 2 on interval 10, ease 2.0:
	// ease = 2.0 + 0.1 - 3*(0.08 + 3*0.02) = 1.68, interval back to 1.
	interval, ease := Calculate(2, 2.0, 10)

	if interval != 1 {
		t.Errorf("interval = %d, want 1", interval)
	}
	if math.Abs(ease-1.68) > 1e-9 {
		t.Errorf("ease = %v, want 1.68", ease)
	}
}

func TestCalculate_EaseScaledGrowth(t *testing.T) {
	interval, ease := Calculate(4, 2.5, 6)

	// ease = 2.5 + 0.1 - 1*(0.08+0.02) = 2.5
	if math.Abs(ease-2.5) > 1e-9 {
		t.Errorf("ease = %v, want 2.5", ease)
	}
	// round(6 * 2.5) = 15
	if interval != 15 {
		t.Errorf("interval = %d, want 15", interval)
	}
}

func TestCalculate_EaseFloor(t *testing.T) {
	for q := MinQuality; q <= MaxQuality; q++ {
		_, ease := Calculate(q, MinEaseFactor, 5)
		if ease < MinEaseFactor {
			t.Errorf("quality %d: ease = %v, below floor %v", q, ease, MinEaseFactor)
		}
	}
}

func TestCalculate_IntervalAtLeastOne(t *testing.T) {
	for q := MinQuality; q <= MaxQuality; q++ {
		for _, prior := range []int{1, 2, 10, 365} {
			interval, _ := Calculate(q, MinEaseFactor, prior)
			if interval < 1 {
				t.Errorf("quality %d, prior %d: interval = %d, want >= 1", q, prior, interval)
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	i1, e1 := Calculate(4, 2.1, 7)
	i2, e2 := Calculate(4, 2.1, 7)

	if i1 != i2 || e1 != e2 {
		t.Errorf("same inputs gave (%d, %v) then (%d, %v)", i1, e1, i2, e2)
	}
}

func TestCalculate_QualityTable(t *testing.T) {
	// Ease deltas for each quality at prior ease 2.5, taken from the
	// SM-2 formula: +0.1, -0.0, -0.14, -0.32, -0.54, -0.8.
	tests := []struct {
		quality  int
		wantEase float64
	}{
		{5, 2.6},
		{4, 2.5},
		{3, 2.36},
		{2, 2.18},
		{1, 1.96},
		{0, 1.7},
	}
	for _, tt := range tests {
		_, ease := Calculate(tt.quality, 2.5, 10)
		if math.Abs(ease-tt.wantEase) > 1e-9 {
			t.Errorf("quality %d: ease = %v, want %v", tt.quality, ease, tt.wantEase)
		}
	}
}

func TestValidQuality(t *testing.T) {
	for q := 0; q <= 5; q++ {
		if !ValidQuality(q) {
			t.Errorf("ValidQuality(%d) = false, want true", q)
		}
	}
	for _, q := range []int{-1, 6, 100} {
		if ValidQuality(q) {
			t.Errorf("ValidQuality(%d) = true, want false", q)
		}
	}
}
