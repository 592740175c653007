// Released under an MIT license. See LICENSE.

// Package condition provides slxi's error type. A condition is an error
// that can also be passed where a cell is expected.
package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
)

const name = "condition"

// Kind classifies a condition.
type Kind int

// Condition kinds.
const (
	Syntax Kind = iota
	Unbound
	UndefinedDeclaration
	Redeclaration
	ConstantModification
	TypeConstraint
	RangeConstraint
	DivisionByZero
	InternalCompiler
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Unbound:
		return "unbound variable"
	case UndefinedDeclaration:
		return "undefined variable declaration"
	case Redeclaration:
		return "variable redeclaration"
	case ConstantModification:
		return "constant modification"
	case TypeConstraint:
		return "type constraint violation"
	case RangeConstraint:
		return "range constraint violation"
	case DivisionByZero:
		return "division by zero"
	case InternalCompiler:
		return "internal compiler error"
	}

	return fmt.Sprintf("condition(%d)", int(k))
}

// T (condition) describes a failure and the values involved in it.
type T struct {
	Kind    Kind
	Message string

	Form   cell.I // The offending form or value.
	Symbol cell.I // The offending symbol.

	// Bounds for a RangeConstraint.
	Index cell.I
	Low   cell.I
	High  cell.I
}

type condition = T

// New creates a condition of kind k with the message msg.
func New(k Kind, msg string) *T {
	return &condition{Kind: k, Message: msg}
}

// Error returns the text of the condition c.
func (c *condition) Error() string {
	var b strings.Builder

	b.WriteString(c.Kind.String())

	if c.Message != "" {
		b.WriteString(": ")
		b.WriteString(c.Message)
	}

	if c.Symbol != nil {
		b.WriteString(": ")
		b.WriteString(literal.String(c.Symbol))
	}

	if c.Index != nil {
		b.WriteString(": index ")
		b.WriteString(literal.String(c.Index))

		if c.Low != nil && c.High != nil {
			b.WriteString(" not in [")
			b.WriteString(literal.String(c.Low))
			b.WriteString(", ")
			b.WriteString(literal.String(c.High))
			b.WriteString("]")
		}
	}

	if c.Form != nil {
		b.WriteString(" in ")
		b.WriteString(literal.String(c.Form))
	}

	return b.String()
}

// Equal returns true if c is the same condition.
func (c *condition) Equal(o cell.I) bool {
	return c == o
}

// Name returns the type name for the condition c.
func (c *condition) Name() string {
	return name
}

// Is returns true if err is, or wraps, a condition of kind k.
func Is(err error, k Kind) bool {
	var c *condition

	return errors.As(err, &c) && c.Kind == k
}

// Recover converts a panicking condition into an error stored in err.
// It must be called directly by a deferred function. Other panics continue.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	c, ok := r.(*condition)
	if !ok {
		panic(r)
	}

	*err = c
}

// Catch runs f and returns the condition it panics with, if any.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c, ok := r.(*condition)
		if !ok {
			panic(r)
		}

		err = c
	}()

	f()

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t condition

	// The condition type is a cell.
	_ = cell.I(&t)

	// The condition type is an error.
	_ = error(&t)
}
