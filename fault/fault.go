// Package fault carries the failure model of the numeric core. Precondition violations are
// fatal: they panic with an *Error whose Kind is one of the sentinel errors below. Callers
// that need an error value instead, such as command line tools or file loaders, convert the
// panic with Recover or Catch at their boundary.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrOutOfRange        = errors.New("out of range")
	ErrNotSupported      = errors.New("not supported")
	ErrNullArgument      = errors.New("null argument")
	ErrLockedMutation    = errors.New("shape change on a locked matrix")
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// Error is the value every fault panics with. Op names the failing operation.
type Error struct {
	Op   string
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s, %v", e.Op, e.Msg, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Throw panics with a fault of the given kind.
func Throw(kind error, op, msg string) {
	panic(errors.WithStack(&Error{Op: op, Kind: kind, Msg: msg}))
}

// Throwf is Throw with a formatted message.
func Throwf(kind error, op, format string, args ...any) {
	Throw(kind, op, fmt.Sprintf(format, args...))
}

// ThrowIf panics with a fault when cond holds.
func ThrowIf(cond bool, kind error, op, msg string) {
	if cond {
		Throw(kind, op, msg)
	}
}

// ThrowIfNil raises ErrNullArgument when arg is absent.
func ThrowIfNil(isNil bool, op, name string) {
	if isNil {
		Throw(ErrNullArgument, op, name)
	}
}

// Recover is deferred at a boundary to turn a fault panic into *errp. Panics that are not
// faults are re-raised untouched.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	var f *Error
	if !errors.As(err, &f) {
		panic(r)
	}
	*errp = err
}

// Catch runs fn and returns the fault it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}

// Is reports whether err is a fault of the given kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
