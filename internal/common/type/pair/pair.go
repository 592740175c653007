// Released under an MIT license. See LICENSE.

// Package pair provides slxi's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

const name = "cons"

// T (pair) is a cons cell. The empty list is the symbol nil.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	o, ok := c.(*pair)
	if !ok {
		return false
	}

	for {
		if p == o {
			return true
		}

		if !p.car.Equal(o.car) {
			return false
		}

		pn, pok := p.cdr.(*pair)
		on, ook := o.cdr.(*pair)

		if !pok || !ook {
			return p.cdr.Equal(o.cdr)
		}

		p, o = pn, on
	}
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	var c cell.I = p
	for first := true; ; first = false {
		t, ok := c.(*pair)
		if !ok {
			break
		}

		if !first {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(t.car))

		c = t.cdr
	}

	if c != cell.I(sym.Nil) {
		b.WriteString(" . ")
		b.WriteString(literal.String(c))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the list c.
// The car of nil is nil. If c is not a list, this function will panic.
func Car(c cell.I) cell.I {
	if c == cell.I(sym.Nil) {
		return c
	}

	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the list c.
// The cdr of nil is nil. If c is not a list, this function will panic.
func Cdr(c cell.I) cell.I {
	if c == cell.I(sym.Nil) {
		return c
	}

	return To(c).cdr
}

// Cadr returns the car of the cdr of the list c.
func Cadr(c cell.I) cell.I {
	return Car(Cdr(c))
}

// Cddr returns the cdr of the cdr of the list c.
func Cddr(c cell.I) cell.I {
	return Cdr(Cdr(c))
}

// Caddr returns the car of the cdr of the cdr of the list c.
func Caddr(c cell.I) cell.I {
	return Car(Cddr(c))
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// IsList returns true if c is a pair or nil.
func IsList(c cell.I) bool {
	return c == cell.I(sym.Nil) || Is(c)
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*pair); ok {
		return t
	}

	if c == cell.I(sym.Nil) {
		panic(condition.NewTypeConstraint(c, name))
	}

	panic(condition.NewTypeConstraint(c, "list"))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)
}
