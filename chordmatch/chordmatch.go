// Package chordmatch matches pitch-class sets against a system's chord
// templates. Matching is exact on the root-relative interval sequence: in
// irregular-step EDOs, shapes that would be rotations of one another in
// 12-EDO are different chords, so no transpositional or inversional
// normalization happens beyond octave reduction.
package chordmatch

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
)

// Key renders an interval sequence as the canonical comparison string, e.g.
// "0-4-7". Registration uses it for duplicate detection, matching for
// template comparison.
func Key(intervals []int) string {
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		parts[i] = fmt.Sprintf("%v", iv)
	}
	return strings.Join(parts, "-")
}

// Intervals reduces a pitch-class collection relative to a root into the
// canonical sorted, deduplicated interval sequence. The root interval 0 is
// always present: a sonority voiced without its root is treated as having an
// implied root. Order of the input is irrelevant.
func Intervals(sys *model.TuningSystem, root int, pitchClasses []int) ([]int, error) {
	if root < 0 || root >= sys.Steps {
		return nil, errors.Wrapf(model.ErrInvalidPitchClass, "root %d in %d-EDO", root, sys.Steps)
	}
	seen := map[int]bool{0: true}
	for _, pc := range pitchClasses {
		if pc < 0 || pc >= sys.Steps {
			return nil, errors.Wrapf(model.ErrInvalidPitchClass, "pitch class %d in %d-EDO", pc, sys.Steps)
		}
		seen[interval.Reduce(sys.Steps, pc-root)] = true
	}
	out := make([]int, 0, len(seen))
	for iv := range seen {
		out = append(out, iv)
	}
	slices.Sort(out)
	return out, nil
}

// Match compares a sonority against every registered template of the same
// arity. At most one template can match since registration rejects duplicate
// interval sequences. No match is a valid outcome, not an error.
func Match(sys *model.TuningSystem, root int, pitchClasses []int) (model.ChordMatch, error) {
	ivs, err := Intervals(sys, root, pitchClasses)
	if err != nil {
		return model.ChordMatch{}, err
	}
	key := Key(ivs)
	for _, t := range sys.Templates {
		if len(t.Intervals) != len(ivs) {
			continue
		}
		if Key(t.Intervals) == key {
			return model.ChordMatch{Matched: true, Intervals: ivs, Names: t.Names}, nil
		}
	}
	return model.ChordMatch{Matched: false, Intervals: ivs}, nil
}
