// Package notename renders pitch classes as display strings. Schemes are
// opaque lookup tables: any enharmonic-spelling logic is baked into the
// stored strings.
package notename

import (
	"github.com/cockroachdb/errors"

	"github.com/tmeridew/edofunc/model"
)

// Name looks up a pitch class in a naming scheme. An empty scheme means the
// system's current scheme.
func Name(sys *model.TuningSystem, pitchClass int, scheme string) (string, error) {
	if pitchClass < 0 || pitchClass >= sys.Steps {
		return "", errors.Wrapf(model.ErrInvalidPitchClass,
			"pitch class %d in %d-EDO", pitchClass, sys.Steps)
	}
	if scheme == "" {
		scheme = sys.CurrentNoteNames
	}
	names, ok := sys.NamingScheme(scheme)
	if !ok {
		return "", errors.Wrapf(model.ErrNamingSchemeNotFound, "note-naming scheme %q", scheme)
	}
	return names[pitchClass], nil
}

// Names renders every pitch class of a collection under one scheme.
func Names(sys *model.TuningSystem, pitchClasses []int, scheme string) ([]string, error) {
	out := make([]string, len(pitchClasses))
	for i, pc := range pitchClasses {
		name, err := Name(sys, pc, scheme)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}
