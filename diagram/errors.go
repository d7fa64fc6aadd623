package diagram

import "fmt"

// ErrorKind classifies the failures the pipeline can report. All of them are
// fatal to the current render; there is no partial output.
type ErrorKind int

const (
	// KindDanglingReference marks an edge or event referencing an unknown
	// node or participant identifier.
	KindDanglingReference ErrorKind = iota
	// KindUnsupportedDirection marks an unrecognized graph direction.
	KindUnsupportedDirection
	// KindLayoutOverflow marks input that would produce a canvas beyond the
	// safety bound.
	KindLayoutOverflow
	// KindParse marks malformed diagram source.
	KindParse
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindDanglingReference:
		return "dangling reference"
	case KindUnsupportedDirection:
		return "unsupported direction"
	case KindLayoutOverflow:
		return "layout overflow"
	case KindParse:
		return "parse error"
	default:
		return "unknown"
	}
}

// Error is the structured error surfaced by every stage of the pipeline.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error with the same kind, so callers can test with
// errors.Is(err, &diagram.Error{Kind: diagram.KindLayoutOverflow}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// DanglingReference builds the error for an edge or event that names an
// unknown identifier.
func DanglingReference(id string) error {
	return &Error{
		Kind:    KindDanglingReference,
		Message: fmt.Sprintf("unknown identifier %q", id),
	}
}

// UnsupportedDirection builds the error for an unrecognized direction value.
func UnsupportedDirection(dir string) error {
	return &Error{
		Kind:    KindUnsupportedDirection,
		Message: fmt.Sprintf("graph direction must be %q or %q, got %q", DirectionLR, DirectionTD, dir),
	}
}

// LayoutOverflow builds the error for a canvas exceeding the safety bound.
func LayoutOverflow(width, height int) error {
	return &Error{
		Kind:    KindLayoutOverflow,
		Message: fmt.Sprintf("canvas %dx%d exceeds the safety bound", width, height),
	}
}

// ParseError builds a parse failure for a source line.
func ParseError(line int, format string, args ...interface{}) error {
	return &Error{
		Kind:    KindParse,
		Message: fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)),
	}
}
