/*package gointerp contains the error taxonomy and numerical tolerances shared
by the curve and surface interpolation packages.

The interpolation routines themselves live in the param, bspline and bezier
subpackages.
*/
package gointerp

import (
	"errors"
	"fmt"
)

// Kind classifies the ways an interpolation request can fail.
type Kind int

const (
	// InputMismatch means the point and parameter counts disagree or there
	// are too few points for the requested degree.
	InputMismatch Kind = iota
	// DegenerateParametrization means the parameters span a (near-)zero
	// range.
	DegenerateParametrization
	// IrregularGrid means a surface grid is empty or has rows of unequal
	// length.
	IrregularGrid
	// SingularSystem means a linear solve hit a negligible pivot.
	SingularSystem
)

var kindNames = []string{
	"InputMismatch",
	"DegenerateParametrization",
	"IrregularGrid",
	"SingularSystem",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error lets a Kind be used directly as a target for errors.Is.
func (k Kind) Error() string { return k.String() }

// Error is returned by every builder in this module. No builder returns a
// partial result alongside an Error.
type Error struct {
	Kind Kind
	Msg  string
}

// Errorf creates an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is this error's Kind or an *Error with the same
// Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain. ok is false if
// there isn't one.
func KindOf(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
