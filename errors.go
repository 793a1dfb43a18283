package chroma

import "errors"

// Sentinel errors for chroma.
var (
	// ErrNotImplemented is returned by conversions that are declared but not
	// yet supported, such as building an Hsv from a packed integer.
	ErrNotImplemented = errors.New("chroma: not implemented")

	// ErrInvalidHex is returned when a hex colour string cannot be parsed.
	ErrInvalidHex = errors.New("chroma: invalid hex color")
)

// InvariantError reports a broken internal invariant. It is raised with
// panic, never returned: reaching it means a bug in chroma itself.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "chroma: " + e.Op + ": invariant violated: " + e.Detail
}
