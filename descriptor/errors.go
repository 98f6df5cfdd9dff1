package descriptor

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfiguration classifies every shape failure found while
	// loading a descriptor. Use errors.Is instead of string matching.
	ErrMalformedConfiguration = errors.New("malformed configuration")

	// ErrUnknownField is returned for keys the descriptor schema does not
	// define. It also matches ErrMalformedConfiguration.
	ErrUnknownField = fmt.Errorf("%w: unknown field", ErrMalformedConfiguration)
)

// MalformedError reports where in the document a shape check failed.
type MalformedError struct {
	Path   string // dotted key path, e.g. "theme.extend.colors"
	Reason string
	kind   error
}

func (e *MalformedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", e.kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", e.kind, e.Path, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.kind
}

func malformed(path, format string, args ...any) error {
	return &MalformedError{Path: path, Reason: fmt.Sprintf(format, args...), kind: ErrMalformedConfiguration}
}

func unknownField(path string) error {
	return &MalformedError{Path: path, Reason: "not part of the schema", kind: ErrUnknownField}
}
