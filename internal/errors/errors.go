// Package errors is the single errors import for infrastructure code: matching
// comes from the standard library, wrapping records stacks through pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching.
var (
	Is = stderrors.Is
	As = stderrors.As
)

// Construction and wrapping. Every wrapper records the caller's stack.
var (
	New       = pkgerrors.New
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// StackTrace returns the innermost stack recorded in err's chain, or nil when
// nothing in the chain carries one.
func StackTrace(err error) pkgerrors.StackTrace {
	type tracer interface{ StackTrace() pkgerrors.StackTrace }

	var trace pkgerrors.StackTrace
	for err != nil {
		if t, ok := err.(tracer); ok {
			trace = t.StackTrace()
		}
		err = stderrors.Unwrap(err)
	}

	return trace
}
