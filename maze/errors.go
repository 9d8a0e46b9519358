package maze

import "errors"

// Configuration errors. Generation aborts for the requested maze.
var (
	ErrUnknownShape      = errors.New("maze: unknown shape")
	ErrUnknownEnhancer   = errors.New("maze: unknown difficulty enhancer")
	ErrUnknownStyle      = errors.New("maze: unknown style")
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")
)

var (
	// ErrOutOfBounds is returned by queries given coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates out of bounds")

	// ErrInvariantViolation signals a defect in shape or path carving.
	// It is never a valid runtime condition and is not retried.
	ErrInvariantViolation = errors.New("maze: internal invariant violated")
)

// IsConfigurationError reports whether err was caused by invalid generation options.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownShape) ||
		errors.Is(err, ErrUnknownEnhancer) ||
		errors.Is(err, ErrUnknownStyle) ||
		errors.Is(err, ErrInvalidDimensions)
}
