package pathgeom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is matched by every [*FormatError].
	ErrInvalidPath = errors.New("invalid path data")
	// ErrInvalidArgument is matched by every [*ArgumentError].
	ErrInvalidArgument = errors.New("invalid argument")
)

// FormatError describes malformed path text. Offset is the byte offset into
// the input at which the problem was detected.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pathgeom: invalid path data at offset %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrInvalidPath }

// ArgumentError reports a violated calling contract, such as a point count
// that doesn't form whole curve pieces or an index out of range.
type ArgumentError struct {
	Func   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("pathgeom: %s: %s", e.Func, e.Reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func argErrorf(fn, format string, args ...any) error {
	return &ArgumentError{Func: fn, Reason: fmt.Sprintf(format, args...)}
}
