// Released under an MIT license. See LICENSE.

// Package char provides slxi's character type.
package char

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/eql"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
)

const name = "character"

// T (char) wraps Go's rune type.
type T rune

type char = T

// New creates a new char cell.
func New(r rune) cell.I {
	c := char(r)

	return &c
}

// Eql returns true if c is a char with the same code point.
func (ch *char) Eql(c cell.I) bool {
	o, ok := c.(*char)

	return ok && *ch == *o
}

// Equal returns true if c is a char with the same code point.
func (ch *char) Equal(c cell.I) bool {
	return ch.Eql(c)
}

// Literal returns the literal representation of the char ch.
func (ch *char) Literal() string {
	s := string(rune(*ch))

	q := adapted.CanonicalString(s)
	if q[2:len(q)-1] != s || s == " " {
		return "#\\" + q
	}

	return "#\\" + s
}

// Name returns the type name for the char ch.
func (ch *char) Name() string {
	return name
}

// Rune returns the code point of the char ch.
func (ch *char) Rune() rune {
	return rune(*ch)
}

// Is returns true if c is a char.
func Is(c cell.I) bool {
	_, ok := c.(*char)

	return ok
}

// To returns a char if c is a char; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*char); ok {
		return t
	}

	panic(condition.NewTypeConstraint(c, name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has an eql relation.
	_ = eql.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)
}
