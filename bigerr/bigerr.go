// Package bigerr defines the error taxonomy shared by every package in
// this module. Each kind wraps github.com/juju/errors so callers can
// still use errors.Cause/errors.ErrorStack on anything this module
// returns, the same way the teacher's parser.ParseError carried a
// Pos alongside a plain message.
package bigerr

import (
	"fmt"

	"github.com/juju/errors"
)

// Kind identifies which branch of the taxonomy an error belongs to.
type Kind int

const (
	ArgumentType Kind = iota
	ArgumentValue
	Syntax
	UndefinedIndex
	SpecialNode
	Overflow
	Lookup
	Indentation
)

func (k Kind) String() string {
	switch k {
	case ArgumentType:
		return "ArgumentTypeError"
	case ArgumentValue:
		return "ArgumentValueError"
	case Syntax:
		return "SyntaxError"
	case UndefinedIndex:
		return "UndefinedIndexError"
	case SpecialNode:
		return "SpecialNodeError"
	case Overflow:
		return "OverflowError"
	case Lookup:
		return "LookupError"
	case Indentation:
		return "IndentationError"
	default:
		return "Error"
	}
}

// Error is the concrete type every exported error in this module is.
// Offset is -1 when the error has no associated position (most
// ArgumentType/ArgumentValue errors); Syntax errors always set it.
type Error struct {
	Kind    Kind
	Message string
	Offset  int
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d)", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Cause returns nil so that errors.Cause (and errors.Trace, which seeds
// its own cause from errors.Cause of what it wraps) resolves back to e
// itself rather than to some unrelated error value.
func (e *Error) Cause() error { return nil }

func newErr(k Kind, offset int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return errors.Trace(&Error{Kind: k, Message: msg, Offset: offset})
}

func ArgumentTypeErrorf(format string, args ...any) error {
	return newErr(ArgumentType, -1, format, args...)
}

func ArgumentValueErrorf(format string, args ...any) error {
	return newErr(ArgumentValue, -1, format, args...)
}

func SyntaxErrorf(offset int, format string, args ...any) error {
	return newErr(Syntax, offset, format, args...)
}

func UndefinedIndexErrorf(format string, args ...any) error {
	return newErr(UndefinedIndex, -1, format, args...)
}

func SpecialNodeErrorf(format string, args ...any) error {
	return newErr(SpecialNode, -1, format, args...)
}

func OverflowErrorf(format string, args ...any) error {
	return newErr(Overflow, -1, format, args...)
}

func LookupErrorf(format string, args ...any) error {
	return newErr(Lookup, -1, format, args...)
}

func IndentationErrorf(format string, args ...any) error {
	return newErr(Indentation, -1, format, args...)
}

// Is reports whether err (or any error it wraps, per errors.Cause)
// is a *Error of the given Kind.
func Is(err error, k Kind) bool {
	cause := errors.Cause(err)
	e, ok := cause.(*Error)
	return ok && e.Kind == k
}
