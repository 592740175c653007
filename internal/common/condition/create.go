// Released under an MIT license. See LICENSE.

package condition

import (
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
)

// NewSyntax creates a Syntax condition for the form f.
func NewSyntax(f cell.I, msg string) *T {
	c := New(Syntax, msg)
	c.Form = f

	return c
}

// NewUnbound creates an Unbound condition for the symbol s.
func NewUnbound(s cell.I) *T {
	c := New(Unbound, "")
	c.Symbol = s

	return c
}

// NewUndefinedDeclaration creates an UndefinedDeclaration condition for s.
func NewUndefinedDeclaration(s cell.I) *T {
	c := New(UndefinedDeclaration, "")
	c.Symbol = s

	return c
}

// NewRedeclaration creates a Redeclaration condition for s.
func NewRedeclaration(s cell.I, msg string) *T {
	c := New(Redeclaration, msg)
	c.Symbol = s

	return c
}

// NewConstantModification creates a ConstantModification condition for s.
func NewConstantModification(s cell.I) *T {
	c := New(ConstantModification, "")
	c.Symbol = s

	return c
}

// NewTypeConstraint creates a TypeConstraint condition for the value v,
// which was expected to be of type expected.
func NewTypeConstraint(v cell.I, expected string) *T {
	c := New(TypeConstraint, "not a "+expected)
	c.Form = v

	return c
}

// NewRangeConstraint creates a RangeConstraint condition for index i,
// which was expected to be between low and high.
func NewRangeConstraint(i, low, high cell.I) *T {
	c := New(RangeConstraint, "")
	c.Index = i
	c.Low = low
	c.High = high

	return c
}

// NewDivisionByZero creates a DivisionByZero condition for the dividend d.
func NewDivisionByZero(d cell.I) *T {
	c := New(DivisionByZero, "")
	c.Form = d

	return c
}

// NewInternalCompiler creates an InternalCompiler condition.
func NewInternalCompiler(msg string) *T {
	return New(InternalCompiler, msg)
}
