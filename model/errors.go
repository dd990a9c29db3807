package model

import "github.com/cockroachdb/errors"

// Sentinel errors for the whole engine. Callers test with errors.Is; the
// packages wrap these with context about what exactly was violated.
var (
	// ErrConfig means a bundle failed a registration invariant. The
	// registration is rejected whole; other systems are unaffected.
	ErrConfig = errors.New("invalid tuning system configuration")

	// ErrUnknownSystem means no bundle was registered under the given ID.
	ErrUnknownSystem = errors.New("unknown tuning system")

	// ErrInvalidPitchClass means a caller passed a pitch outside [0, N).
	// Programmer error: surfaced immediately, never retried.
	ErrInvalidPitchClass = errors.New("pitch class out of range")

	// ErrNamingSchemeNotFound means the requested notation style or
	// note-naming scheme does not exist for the system. Recoverable by
	// falling back to the system's current scheme.
	ErrNamingSchemeNotFound = errors.New("naming scheme not found")
)
