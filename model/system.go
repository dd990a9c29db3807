package model

// SystemID identifies a registered tuning system. It is the system's step
// count: nothing in the data model allows two bundles with the same EDO.
type SystemID = int

// QualityCode is one of the categorical interval-quality tags. The letters
// are opaque to the engine; only the function rules in the harmony package
// attach behavior to them.
type QualityCode string

const (
	QualityStable   QualityCode = "s"
	QualityModal    QualityCode = "m"
	QualityHollow   QualityCode = "h"
	QualityUnstable QualityCode = "u"
	QualityLeading  QualityCode = "l"
	QualityOdd      QualityCode = "o"
)

// KnownQualities is the closed alphabet accepted at registration.
var KnownQualities = map[QualityCode]bool{
	QualityStable:   true,
	QualityModal:    true,
	QualityHollow:   true,
	QualityUnstable: true,
	QualityLeading:  true,
	QualityOdd:      true,
}

// ChordTemplate is a chord shape rooted at 0: a strictly increasing interval
// sequence paired with its names keyed by notation style ("full", "standard",
// "symbols", ...). Which styles exist varies per system.
type ChordTemplate struct {
	Intervals []int
	Names     map[string]string
}

// Bundle is the already-validated-upstream, in-memory configuration for one
// tuning system, as handed to the registry by an external loader. The
// registry re-validates every invariant before committing it.
type Bundle struct {
	Steps            int
	Qualities        []QualityCode
	LeadingTargets   map[int]int
	DominantLeading  []int
	Templates        []ChordTemplate
	NoteNames        map[string][]string
	CurrentNoteNames string
}

// TuningSystem is one committed, immutable EDO configuration. All engine
// operations are read-only lookups against it, so concurrent use needs no
// synchronization once registration is done.
type TuningSystem struct {
	Steps            int
	Qualities        []QualityCode
	LeadingTargets   map[int]int
	DominantLeading  map[int]bool
	Templates        []ChordTemplate
	NoteNames        map[string][]string
	CurrentNoteNames string

	// PerfectFifth is the step count whose size is closest to 702 cents,
	// derived once at registration.
	PerfectFifth int
}

// NamingScheme returns the raw name table for a scheme, which may have
// Steps+1 entries for scale-degree schemes that include the upper octave.
func (s *TuningSystem) NamingScheme(scheme string) ([]string, bool) {
	names, ok := s.NoteNames[scheme]
	return names, ok
}
