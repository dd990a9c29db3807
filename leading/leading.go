// Package leading resolves tendency tones: which intervals carry a codified
// resolution target and which of those establish dominant function.
package leading

import (
	"github.com/tmeridew/edofunc/chordmatch"
	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
)

// Target returns the resolution target of an interval, if it has one.
// Intervals are reduced into [0, Steps) first. Absence means the interval
// has no codified tendency.
func Target(sys *model.TuningSystem, iv int) (int, bool) {
	target, ok := sys.LeadingTargets[interval.Reduce(sys.Steps, iv)]
	return target, ok
}

// IsDominant reports whether an interval establishes dominant function.
// Registration guarantees every dominant interval also has a Target.
func IsDominant(sys *model.TuningSystem, iv int) bool {
	return sys.DominantLeading[interval.Reduce(sys.Steps, iv)]
}

// Tendencies applies Target and IsDominant to every root-relative interval
// in the sonority, in ascending interval order. Only intervals with a
// resolution target appear in the result.
func Tendencies(sys *model.TuningSystem, root int, pitchClasses []int) ([]model.TendencyTone, error) {
	ivs, err := chordmatch.Intervals(sys, root, pitchClasses)
	if err != nil {
		return nil, err
	}
	var tones []model.TendencyTone
	for _, iv := range ivs {
		target, ok := Target(sys, iv)
		if !ok {
			continue
		}
		tones = append(tones, model.TendencyTone{
			Interval: iv,
			Target:   target,
			Dominant: IsDominant(sys, iv),
		})
	}
	return tones, nil
}

// ChordIsDominant is the OR over the sonority's tendency-tone dominant
// flags: a single dominant tendency tone imparts dominant function to the
// whole chord.
func ChordIsDominant(tones []model.TendencyTone) bool {
	for _, t := range tones {
		if t.Dominant {
			return true
		}
	}
	return false
}
