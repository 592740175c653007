// Released under an MIT license. See LICENSE.

// Package fn provides slxi's function type for functions implemented in Go.
package fn

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
)

const name = "function"

// Func is the Go signature of a slxi function.
type Func func(args ...cell.I) cell.I

// T (fn) is a named host function.
type T struct {
	label string
	f     Func
}

type fn = T

// New creates a function named label that calls f.
func New(label string, f Func) cell.I {
	return &fn{label: label, f: f}
}

// Call applies the function to args.
func (f *fn) Call(args ...cell.I) cell.I {
	return f.f(args...)
}

// Equal returns true if c is the same function.
func (f *fn) Equal(c cell.I) bool {
	return c == cell.I(f)
}

// Literal returns the printed representation of the function f.
func (f *fn) Literal() string {
	return "#<" + name + " " + f.label + ">"
}

// Name returns the type name for the function f.
func (f *fn) Name() string {
	return name
}

// Is returns true if c is a function.
func Is(c cell.I) bool {
	_, ok := c.(*fn)

	return ok
}

// To returns a function if c is a function; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*fn); ok {
		return t
	}

	panic(condition.NewTypeConstraint(c, name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fn

	// The fn type is a cell.
	_ = cell.I(&t)

	// The fn type has a literal representation.
	_ = literal.I(&t)
}
