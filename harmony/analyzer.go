package harmony

import (
	"golang.org/x/exp/slices"

	"github.com/tmeridew/edofunc/chordmatch"
	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/leading"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/notename"
	"github.com/tmeridew/edofunc/registry"
)

// sortedMembers reduces and deduplicates the sounding pitch classes for
// display, ascending.
func sortedMembers(n int, pitchClasses []int) []int {
	set := reduceSet(n, pitchClasses)
	out := make([]int, 0, len(set))
	for pc := range set {
		out = append(out, pc)
	}
	slices.Sort(out)
	return out
}

// Analyzer is the facade over the whole engine, keyed by system ID.
type Analyzer struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Analyzer {
	return &Analyzer{reg: reg}
}

func (a *Analyzer) Registry() *registry.Registry {
	return a.reg
}

// Analyze runs the full pipeline on one sonority: template matching,
// tendency tones, dominant status, harmonic function, and note names. Pitch
// classes are tonic-relative; rootPitch is the assumed chord root.
//
// An unrecognized chord is not an error: every other field is still
// populated. Errors come only from an unknown system, out-of-range pitches,
// a missing naming scheme, or requesting a notation style the matched
// template lacks (style absence is checked only when a style is asked for).
func (a *Analyzer) Analyze(id model.SystemID, rootPitch int, pitchClasses []int, notationStyle, namingScheme string) (model.HarmonicAnalysis, error) {
	var out model.HarmonicAnalysis

	sys, err := a.reg.Get(id)
	if err != nil {
		return out, err
	}

	match, err := chordmatch.Match(sys, rootPitch, pitchClasses)
	if err != nil {
		return out, err
	}
	if notationStyle != "" && match.Matched {
		if _, err := match.Name(notationStyle); err != nil {
			return out, err
		}
	}

	tones, err := leading.Tendencies(sys, rootPitch, pitchClasses)
	if err != nil {
		return out, err
	}

	rootName, err := notename.Name(sys, rootPitch, namingScheme)
	if err != nil {
		return out, err
	}
	memberNames, err := notename.Names(sys, sortedMembers(sys.Steps, pitchClasses), namingScheme)
	if err != nil {
		return out, err
	}

	out = model.HarmonicAnalysis{
		System:      id,
		Root:        rootPitch,
		Chord:       match,
		Tendencies:  tones,
		IsDominant:  leading.ChordIsDominant(tones),
		Function:    Classify(sys, pitchClasses),
		RootName:    rootName,
		MemberNames: memberNames,
	}
	return out, nil
}

// IntervalQuality, LeadingTarget, IsDominantInterval and NoteName are the
// single-lookup entry points of the facade, for hosts that don't need a full
// analysis.

func (a *Analyzer) IntervalQuality(id model.SystemID, from, to int) (model.QualityCode, error) {
	sys, err := a.reg.Get(id)
	if err != nil {
		return "", err
	}
	return interval.Quality(sys, from, to)
}

func (a *Analyzer) LeadingTarget(id model.SystemID, iv int) (int, bool, error) {
	sys, err := a.reg.Get(id)
	if err != nil {
		return 0, false, err
	}
	target, ok := leading.Target(sys, iv)
	return target, ok, nil
}

func (a *Analyzer) IsDominantInterval(id model.SystemID, iv int) (bool, error) {
	sys, err := a.reg.Get(id)
	if err != nil {
		return false, err
	}
	return leading.IsDominant(sys, iv), nil
}

func (a *Analyzer) NoteName(id model.SystemID, pitchClass int, scheme string) (string, error) {
	sys, err := a.reg.Get(id)
	if err != nil {
		return "", err
	}
	return notename.Name(sys, pitchClass, scheme)
}
