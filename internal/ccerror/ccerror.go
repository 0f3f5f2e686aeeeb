// Package ccerror defines the uniform failure value for the preprocessor:
// a message plus, when one exists, the source position of the construct
// that failed. There are no error codes and no warning level; anything the
// scanner cannot classify becomes an Other token instead of an error, so a
// CcError always means an extent could not be determined or a file could
// not be read.
package ccerror

import (
	"errors"
	"fmt"

	"github.com/ucfjimg/cpp/internal/source"
)

// CcError carries a message and an optional position. Positions point at
// the start of the offending construct (the opening quote, the comment
// opener), not at wherever scanning finally gave up.
type CcError struct {
	What string
	Loc  *source.Point
}

// New builds an error with no position. I/O failures use this: they
// happen before any position in the failing file exists.
func New(what string) *CcError {
	return &CcError{What: what}
}

// AtPoint builds an error pinned to a source position.
func AtPoint(what string, pt source.Point) *CcError {
	return &CcError{What: what, Loc: &pt}
}

// Wrap converts any error into a CcError, preserving an existing one.
func Wrap(err error) *CcError {
	if err == nil {
		return nil
	}
	var ce *CcError
	if errors.As(err, &ce) {
		return ce
	}
	return &CcError{What: err.Error()}
}

func (e *CcError) Error() string {
	if e.Loc != nil {
		return fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Col, e.What)
	}
	return e.What
}

// Equal reports structural equality; tests compare errors by content.
func (e *CcError) Equal(other *CcError) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.What != other.What {
		return false
	}
	if e.Loc == nil || other.Loc == nil {
		return e.Loc == other.Loc
	}
	return *e.Loc == *other.Loc
}
