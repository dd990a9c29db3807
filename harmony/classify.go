// Package harmony composes the engine into end-to-end analysis calls and
// assigns harmonic function (tonic, predominant, dominant, mediant) to
// sonorities.
package harmony

import (
	"golang.org/x/exp/slices"

	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/leading"
	"github.com/tmeridew/edofunc/model"
)

// reduceSet wraps a pitch-class collection into a deduplicated [0, n) set.
func reduceSet(n int, pitchClasses []int) map[int]bool {
	set := make(map[int]bool, len(pitchClasses))
	for _, pc := range pitchClasses {
		set[interval.Reduce(n, pc)] = true
	}
	return set
}

// hasActiveLeading reports whether any leading-quality interval in the set
// has a resolution target that the set does not already contain. A leading
// tone whose target is voiced has already resolved and carries no pull.
func hasActiveLeading(sys *model.TuningSystem, set map[int]bool) bool {
	for iv := range set {
		if interval.Of(sys, iv) != model.QualityLeading {
			continue
		}
		if target, ok := leading.Target(sys, iv); ok && !set[target] {
			return true
		}
	}
	return false
}

// hasActiveDominantLeading is the same activity check restricted to the
// dominant leading intervals.
func hasActiveDominantLeading(sys *model.TuningSystem, set map[int]bool) bool {
	for iv := range set {
		if !leading.IsDominant(sys, iv) {
			continue
		}
		if target, ok := leading.Target(sys, iv); ok && !set[target] {
			return true
		}
	}
	return false
}

// isDominantShell reports the rootless-dominant shape: some stable interval
// sounds, the root does not, and no two chord tones are a stable interval
// apart. A bare fifth without internal stability reads as an incomplete
// dominant rather than a displaced tonic.
func isDominantShell(sys *model.TuningSystem, set map[int]bool) bool {
	hasStable := false
	for iv := range set {
		if interval.Of(sys, iv) == model.QualityStable {
			hasStable = true
			break
		}
	}
	if !hasStable || set[0] {
		return false
	}

	ivs := make([]int, 0, len(set))
	for iv := range set {
		ivs = append(ivs, iv)
	}
	slices.Sort(ivs)
	for i := 0; i < len(ivs); i++ {
		for j := i + 1; j < len(ivs); j++ {
			between := interval.Reduce(sys.Steps, ivs[j]-ivs[i])
			if between != 0 && interval.Of(sys, between) == model.QualityStable {
				return false
			}
		}
	}
	return true
}

// Classify assigns one of the four harmonic functions to a sonority given as
// tonic-relative pitch classes. Rules, in order:
//
//  1. dominant — active dominant leading, plus either an unstable interval
//     or a dominant shell
//  2. predominant — unstable interval, no active dominant leading
//  3. mediant — no unstable interval, but active leading, hollow or odd
//  4. tonic — none of the above tensions, root present, perfect fifth present
//  5. predominant — fallback
func Classify(sys *model.TuningSystem, pitchClasses []int) model.Function {
	set := reduceSet(sys.Steps, pitchClasses)

	hasUnstable, hasHollow, hasOdd := false, false, false
	for iv := range set {
		switch interval.Of(sys, iv) {
		case model.QualityUnstable:
			hasUnstable = true
		case model.QualityHollow:
			hasHollow = true
		case model.QualityOdd:
			hasOdd = true
		}
	}
	activeDominant := hasActiveDominantLeading(sys, set)

	switch {
	case activeDominant && (hasUnstable || isDominantShell(sys, set)):
		return model.FunctionDominant
	case hasUnstable && !activeDominant:
		return model.FunctionPredominant
	case !hasUnstable && (hasActiveLeading(sys, set) || hasHollow || hasOdd):
		return model.FunctionMediant
	case set[0] && set[sys.PerfectFifth]:
		return model.FunctionTonic
	default:
		return model.FunctionPredominant
	}
}
