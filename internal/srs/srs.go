// Package srs implements the SM-2 variant scheduling calculation.
// It is a pure function of its inputs: no clock, no I/O, no state.
package srs

import "math"

// MinEaseFactor is the algorithmic floor for the ease factor.
const MinEaseFactor = 1.3

// DefaultEaseFactor is the ease factor assigned to an item on its first review.
const DefaultEaseFactor = 2.5

// DefaultIntervalDays is the interval assigned to an item on its first review.
const DefaultIntervalDays = 1

// GraduationIntervalDays is the fixed interval after the first successful
// review of a day-1 item. The first graduation step is not ease-scaled.
const GraduationIntervalDays = 3

// Quality score bounds. 0 = total blackout, 5 = perfect recall.
const (
	MinQuality = 0
	MaxQuality = 5
)

// PassingQuality is the lowest quality counted as successful recall.
const PassingQuality = 3

// Calculate returns the next review interval and ease factor given the
// quality score of a review and the prior scheduling state.
//
// Quality is expected in [0,5]; out-of-range values are not validated
// here and produce defined but meaningless results. Callers validate.
func Calculate(quality int, priorEase float64, priorIntervalDays int) (intervalDays int, ease float64) {
	q := float64(quality)
	ease = priorEase + 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	switch {
	case quality < PassingQuality:
		// Failed recall drops the interval back to the minimum. The
		// repetition count is deliberately left to the caller, which
		// increments it on every review regardless of outcome.
		intervalDays = 1
	case priorIntervalDays == DefaultIntervalDays:
		intervalDays = GraduationIntervalDays
	default:
		intervalDays = int(math.Round(float64(priorIntervalDays) * ease))
	}

	if intervalDays < 1 {
		intervalDays = 1
	}
	return intervalDays, ease
}

// ValidQuality reports whether q is inside the accepted [0,5] range.
func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}
