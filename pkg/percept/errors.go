package percept

import "errors"

// The pipeline fails fast, before any transform work, with one of
// these. Wrapped errors carry the detail; callers match with errors.Is.
var(
	// ErrInvalidGeometry - non-positive distance, display size or
	// resolution, or a tilt angle at/past 90 degrees.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnsupportedFormat - a zero-area image, or one with no chroma
	// channels to preserve.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidCutoff - a band cutoff fell outside (0, Nyquist]. This
	// is an internal consistency check on the acuity model, not a user
	// input problem.
	ErrInvalidCutoff = errors.New("invalid band cutoff")
)
