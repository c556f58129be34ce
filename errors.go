package mtx

import "errors"

// Sentinel errors, matched with errors.Is. Call sites wrap them with
// fmt.Errorf("...: %w", ...) to add the offending line or token.
var (
	// ErrFormat covers structural violations: ill-shaped format, dimension
	// or data lines, unknown header literals, unsupported objects and
	// formats, coordinates outside the declared bounds, truncated files.
	ErrFormat = errors.New("mtx: malformed matrix market input")

	// ErrMalformedNumber is returned when a token that must be numeric
	// does not parse as one.
	ErrMalformedNumber = errors.New("mtx: malformed number")
)
