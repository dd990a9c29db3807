package model

import "github.com/cockroachdb/errors"

// Function is the four-way harmonic role of a sonority relative to a tonic.
type Function string

const (
	FunctionTonic       Function = "tonic"
	FunctionPredominant Function = "predominant"
	FunctionDominant    Function = "dominant"
	FunctionMediant     Function = "mediant"
)

// Abbrev returns the single-letter form used in function tables.
func (f Function) Abbrev() string {
	switch f {
	case FunctionTonic:
		return "T"
	case FunctionPredominant:
		return "P"
	case FunctionDominant:
		return "D"
	case FunctionMediant:
		return "M"
	}
	return "?"
}

// TendencyTone is one root-relative interval with a codified resolution.
type TendencyTone struct {
	Interval int
	Target   int
	Dominant bool
}

// ChordMatch is the outcome of matching a sonority against a system's chord
// templates. An unmatched sonority is a valid result, not an error: Matched
// is false and Names is nil.
type ChordMatch struct {
	Matched   bool
	Intervals []int
	Names     map[string]string
}

// Name renders the matched chord in one notation style. Requesting a style
// the system does not define for this template fails with
// ErrNamingSchemeNotFound; that check happens here, at render time, never at
// match time.
func (c ChordMatch) Name(style string) (string, error) {
	if !c.Matched {
		return "", errors.Wrap(ErrNamingSchemeNotFound, "chord is unrecognized")
	}
	name, ok := c.Names[style]
	if !ok {
		return "", errors.Wrapf(ErrNamingSchemeNotFound, "notation style %q", style)
	}
	return name, nil
}

// HarmonicAnalysis is the composite result of one end-to-end analysis call.
// Each sub-result is populated independently: a chord that matches no
// template still gets tendency tones, names and a function.
type HarmonicAnalysis struct {
	System     SystemID
	Root       int
	Chord      ChordMatch
	Tendencies []TendencyTone

	// IsDominant is the OR over the tendency tones' dominant flags: one
	// dominant leading interval is enough to mark the whole chord.
	IsDominant bool

	// Function is the tonic/predominant/dominant/mediant classification of
	// the sonority taken as tonic-relative pitch classes.
	Function Function

	RootName    string
	MemberNames []string
}
