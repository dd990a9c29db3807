// Package registry holds validated, immutable tuning-system configurations.
// Register is the only mutating operation; every later call is a read-only
// lookup, so a Registry is safe for unsynchronized concurrent reads once
// initialization is done (and safe throughout via the internal lock).
package registry

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/tmeridew/edofunc/chordmatch"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/util"
)

type Registry struct {
	mu      sync.RWMutex
	systems map[model.SystemID]*model.TuningSystem
}

func New() *Registry {
	return &Registry{systems: make(map[model.SystemID]*model.TuningSystem)}
}

// Register validates a bundle and commits it under its step count. The
// commit is all-or-nothing: a bundle that violates any invariant leaves the
// registry untouched and fails with model.ErrConfig naming the violation.
func (r *Registry) Register(b model.Bundle) (model.SystemID, error) {
	sys, err := build(b)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.systems[sys.Steps]; exists {
		return 0, errors.Wrapf(model.ErrConfig, "system %d already registered", sys.Steps)
	}
	r.systems[sys.Steps] = sys
	return sys.Steps, nil
}

// Get returns the committed system for an ID, or model.ErrUnknownSystem.
func (r *Registry) Get(id model.SystemID) (*model.TuningSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sys, ok := r.systems[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrUnknownSystem, "system %d", id)
	}
	return sys, nil
}

// Systems returns the registered IDs in ascending order.
func (r *Registry) Systems() []model.SystemID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return util.SortedKeys(r.systems)
}

// build checks every registration invariant and derives the immutable
// TuningSystem. Nothing is shared with the caller's bundle: slices and maps
// are copied so later caller mutation cannot reach committed state.
func build(b model.Bundle) (*model.TuningSystem, error) {
	n := b.Steps
	if n <= 0 {
		return nil, errors.Wrapf(model.ErrConfig, "step count %d", n)
	}
	if len(b.Qualities) != n {
		return nil, errors.Wrapf(model.ErrConfig,
			"expected %d interval qualities, got %d", n, len(b.Qualities))
	}
	for i, q := range b.Qualities {
		if !model.KnownQualities[q] {
			return nil, errors.Wrapf(model.ErrConfig, "unknown quality code %q at step %d", q, i)
		}
	}

	for k, v := range b.LeadingTargets {
		if k < 0 || k >= n || v < 0 || v >= n {
			return nil, errors.Wrapf(model.ErrConfig, "leading target %d: %d out of [0, %d)", k, v, n)
		}
	}
	dominant := make(map[int]bool, len(b.DominantLeading))
	for _, iv := range b.DominantLeading {
		if _, ok := b.LeadingTargets[iv]; !ok {
			return nil, errors.Wrapf(model.ErrConfig,
				"dominant leading interval %d has no leading target", iv)
		}
		dominant[iv] = true
	}

	templates := make([]model.ChordTemplate, 0, len(b.Templates))
	seen := make(map[string]bool, len(b.Templates))
	for ti, t := range b.Templates {
		if len(t.Intervals) == 0 || t.Intervals[0] != 0 {
			return nil, errors.Wrapf(model.ErrConfig, "template %d does not start at 0", ti)
		}
		for i := 1; i < len(t.Intervals); i++ {
			if t.Intervals[i] <= t.Intervals[i-1] {
				return nil, errors.Wrapf(model.ErrConfig,
					"template %d intervals are not strictly increasing", ti)
			}
		}
		last := t.Intervals[len(t.Intervals)-1]
		if last >= n {
			return nil, errors.Wrapf(model.ErrConfig,
				"template %d interval %d out of [0, %d)", ti, last, n)
		}
		key := chordmatch.Key(t.Intervals)
		if seen[key] {
			return nil, errors.Wrapf(model.ErrConfig, "duplicate template intervals %s", key)
		}
		seen[key] = true
		templates = append(templates, model.ChordTemplate{
			Intervals: slices.Clone(t.Intervals),
			Names:     cloneNames(t.Names),
		})
	}

	if len(b.NoteNames) > 0 {
		if _, ok := b.NoteNames[b.CurrentNoteNames]; !ok {
			return nil, errors.Wrapf(model.ErrConfig,
				"current naming scheme %q is not defined", b.CurrentNoteNames)
		}
	}
	noteNames := make(map[string][]string, len(b.NoteNames))
	for scheme, names := range b.NoteNames {
		// N+1 covers scale-degree schemes that repeat the octave.
		if len(names) != n && len(names) != n+1 {
			return nil, errors.Wrapf(model.ErrConfig,
				"naming scheme %q has %d names for %d steps", scheme, len(names), n)
		}
		noteNames[scheme] = slices.Clone(names)
	}

	return &model.TuningSystem{
		Steps:            n,
		Qualities:        slices.Clone(b.Qualities),
		LeadingTargets:   cloneTargets(b.LeadingTargets),
		DominantLeading:  dominant,
		Templates:        templates,
		NoteNames:        noteNames,
		CurrentNoteNames: b.CurrentNoteNames,
		PerfectFifth:     perfectFifth(n),
	}, nil
}

// perfectFifth finds the step count closest to 702 cents.
func perfectFifth(n int) int {
	centPerStep := 1200.0 / float64(n)
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		dist := math.Abs(float64(i)*centPerStep - 702)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func cloneNames(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTargets(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
