package imaging

import "errors"

// Error kinds reported by the engine. Callers test for them with errors.Is;
// the returned errors wrap one of these with the failing operation and values.
var (
	// ErrNotFound is returned when a registry name has no image.
	ErrNotFound = errors.New("imaging: image not found")

	// ErrDimensionMismatch is returned when a mask does not match its source,
	// or a downscale target is larger than the source.
	ErrDimensionMismatch = errors.New("imaging: dimension mismatch")

	// ErrInvalidParameter is returned for unparsable or out-of-range parameters.
	ErrInvalidParameter = errors.New("imaging: invalid parameter")

	// ErrMalformedInput is returned when a PPM stream cannot be parsed.
	ErrMalformedInput = errors.New("imaging: malformed input")

	// ErrConstructionInvariant is returned when a pixel or image would violate
	// its invariants (negative channel, channel above maxValue, bad grid shape).
	ErrConstructionInvariant = errors.New("imaging: construction invariant violated")
)
