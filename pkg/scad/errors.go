package scad

import (
	"github.com/matzehuels/scadgen/pkg/errors"
)

// MissingParameterError reports a required field that was never set.
type MissingParameterError struct {
	Statement string
	Field     string
}

// Error returns the coded message.
func (e *MissingParameterError) Error() string { return e.coded().Error() }

// Unwrap exposes the coded error so errors.Is(err, ErrCodeMissingParameter)
// holds.
func (e *MissingParameterError) Unwrap() error { return e.coded() }

func (e *MissingParameterError) coded() *errors.Error {
	return errors.New(errors.ErrCodeMissingParameter, "%s: required parameter %q is not set", e.Statement, e.Field)
}

// DimensionMismatchError reports a child whose dimension is incompatible with
// its parent.
type DimensionMismatchError struct {
	// Statement is the name of the parent, or "block".
	Statement string
	Expected  Dimension
	Actual    Dimension
	// Index is the position of the offending child.
	Index int
}

// Error returns the coded message.
func (e *DimensionMismatchError) Error() string { return e.coded().Error() }

// Unwrap exposes the coded error so errors.Is(err, ErrCodeDimensionMismatch)
// holds.
func (e *DimensionMismatchError) Unwrap() error { return e.coded() }

func (e *DimensionMismatchError) coded() *errors.Error {
	return errors.New(errors.ErrCodeDimensionMismatch, "%s: child %d is %s, expected %s",
		e.Statement, e.Index, e.Actual, e.Expected)
}
