// Package interval labels pairwise intervals with their categorical quality
// codes and generates quality tables for new EDO systems.
package interval

import (
	"github.com/cockroachdb/errors"

	"github.com/tmeridew/edofunc/model"
)

// Reduce wraps a signed step difference into [0, n).
func Reduce(n, delta int) int {
	m := delta % n
	if m < 0 {
		m += n
	}
	return m
}

// Quality returns the quality code of the interval from one pitch class to
// another. Both pitches must lie in [0, Steps).
func Quality(sys *model.TuningSystem, from, to int) (model.QualityCode, error) {
	if from < 0 || from >= sys.Steps {
		return "", errors.Wrapf(model.ErrInvalidPitchClass, "from %d in %d-EDO", from, sys.Steps)
	}
	if to < 0 || to >= sys.Steps {
		return "", errors.Wrapf(model.ErrInvalidPitchClass, "to %d in %d-EDO", to, sys.Steps)
	}
	return sys.Qualities[Reduce(sys.Steps, to-from)], nil
}

// Of returns the quality of a bare interval, reduced into [0, Steps).
// Intervals, unlike pitch classes, are tolerated outside the octave.
func Of(sys *model.TuningSystem, iv int) model.QualityCode {
	return sys.Qualities[Reduce(sys.Steps, iv)]
}

// GenerateQualities builds a quality list for an n-EDO system from the cent
// ranges the datasets were authored with:
//
//	0¢ s | <160 o | <255 u | <445 m | <560 u | <665 o | <735 s |
//	<850 l | <1040 h | <1200 l
func GenerateQualities(n int) []model.QualityCode {
	centPerStep := 1200.0 / float64(n)
	out := make([]model.QualityCode, n)
	for step := 0; step < n; step++ {
		cents := float64(step) * centPerStep
		var q model.QualityCode
		switch {
		case step == 0:
			q = model.QualityStable
		case cents < 160:
			q = model.QualityOdd
		case cents < 255:
			q = model.QualityUnstable
		case cents < 445:
			q = model.QualityModal
		case cents < 560:
			q = model.QualityUnstable
		case cents < 665:
			q = model.QualityOdd
		case cents < 735:
			q = model.QualityStable
		case cents < 850:
			q = model.QualityLeading
		case cents < 1040:
			q = model.QualityHollow
		default:
			q = model.QualityLeading
		}
		out[step] = q
	}
	return out
}
