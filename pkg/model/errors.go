package model

import (
	"github.com/matzehuels/scadgen/pkg/errors"
)

// PathError locates a failure inside a model file. It unwraps to the cause,
// so errors.GetCode reports the cause's code.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Path + ": " + errors.UserMessage(e.Err) }

func (e *PathError) Unwrap() error { return e.Err }
