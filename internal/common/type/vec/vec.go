// Released under an MIT license. See LICENSE.

// Package vec provides slxi's vector type.
package vec

import (
	"slices"
	"strings"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

const name = "vector"

// T (vec) is a mutable, fixed-length array of cells.
type T struct {
	elements []cell.I
}

type vec = T

// New creates a new vec holding a copy of elements.
func New(elements ...cell.I) cell.I {
	return &vec{elements: slices.Clone(elements)}
}

// Make creates a new vec of length n with every element nil.
func Make(n int) cell.I {
	es := make([]cell.I, n)
	for i := range es {
		es[i] = sym.Nil
	}

	return &vec{elements: es}
}

// Equal returns true if c is a vec with equal elements.
func (v *vec) Equal(c cell.I) bool {
	o, ok := c.(*vec)
	if !ok || len(v.elements) != len(o.elements) {
		return false
	}

	for i, e := range v.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the vec v.
func (v *vec) Literal() string {
	ss := make([]string, len(v.elements))
	for i, e := range v.elements {
		ss[i] = literal.String(e)
	}

	return "#(" + strings.Join(ss, " ") + ")"
}

// Name returns the type name for the vec v.
func (v *vec) Name() string {
	return name
}

// Methods specific to vec.

// Len returns the number of elements in v.
func (v *vec) Len() int {
	return len(v.elements)
}

// Ref returns the element at index i.
func (v *vec) Ref(i int) cell.I {
	v.check(i)

	return v.elements[i]
}

// Set replaces the element at index i with c.
func (v *vec) Set(i int, c cell.I) {
	v.check(i)

	v.elements[i] = c
}

// Fill replaces every element of v with c.
func (v *vec) Fill(c cell.I) {
	for i := range v.elements {
		v.elements[i] = c
	}
}

func (v *vec) check(i int) {
	if i < 0 || i >= len(v.elements) {
		panic(condition.NewRangeConstraint(
			num.Int(int64(i)),
			num.Int(0),
			num.Int(int64(len(v.elements)-1)),
		))
	}
}

// Is returns true if c is a vec.
func Is(c cell.I) bool {
	_, ok := c.(*vec)

	return ok
}

// To returns a vec if c is a vec; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*vec); ok {
		return t
	}

	panic(condition.NewTypeConstraint(c, name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vec

	// The vec type is a cell.
	_ = cell.I(&t)

	// The vec type has a literal representation.
	_ = literal.I(&t)
}
