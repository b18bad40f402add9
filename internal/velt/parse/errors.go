package parse

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Error is a positioned parse diagnostic.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func errorf(pos lexer.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// AmbiguityError reports a parenthesized group that parses neither as a
// field list nor as a child list. It is the single diagnostic-merging
// point: both underlying causes are kept so callers can see why each
// interpretation was rejected. The position anchors at the group's
// opening paren.
type AmbiguityError struct {
	Pos         lexer.Position
	FieldsErr   error
	ChildrenErr error
}

func (e *AmbiguityError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: expected attributes or children", e.Pos)
	fmt.Fprintf(&sb, "\n\tnot attributes: %v", e.FieldsErr)
	fmt.Fprintf(&sb, "\n\tnot children: %v", e.ChildrenErr)
	return sb.String()
}

func (e *AmbiguityError) Unwrap() []error {
	return []error{e.FieldsErr, e.ChildrenErr}
}

// TupleArityError reports a conditional class tuple with the wrong number
// of components.
type TupleArityError struct {
	Pos lexer.Position
	Got int
}

func (e *TupleArityError) Error() string {
	return fmt.Sprintf("%s: class tuple has %d items, expected 2", e.Pos, e.Got)
}
