// Released under an MIT license. See LICENSE.

// Package seq provides operations common to lists, vectors and strings.
// Each operation is written once against a lazy element iterator; the
// concrete sequence kinds only supply iteration and reconstruction.
package seq

import (
	"iter"
	"slices"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/char"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
	"github.com/michaelmacinnis/slxi/internal/common/type/str"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/common/type/vec"
)

// Kind identifies a concrete sequence representation.
type Kind int

// Sequence kinds.
const (
	List Kind = iota
	Vector
	String
)

// Is returns true if c is a list, vector or string.
func Is(c cell.I) bool {
	return pair.IsList(c) || vec.Is(c) || str.Is(c)
}

// KindOf returns the kind of the sequence c.
func KindOf(c cell.I) Kind {
	switch {
	case pair.IsList(c):
		return List
	case vec.Is(c):
		return Vector
	case str.Is(c):
		return String
	}

	panic(condition.NewTypeConstraint(c, "sequence"))
}

// All returns an iterator over the elements of the sequence c.
func All(c cell.I) iter.Seq[cell.I] {
	switch KindOf(c) {
	case List:
		return func(yield func(cell.I) bool) {
			for l := c; l != list.Null; l = pair.Cdr(l) {
				if !yield(pair.Car(l)) {
					return
				}
			}
		}
	case Vector:
		v := vec.To(c)

		return func(yield func(cell.I) bool) {
			for i := 0; i < v.Len(); i++ {
				if !yield(v.Ref(i)) {
					return
				}
			}
		}
	case String:
		s := str.To(c)

		return func(yield func(cell.I) bool) {
			for i := 0; i < s.Len(); i++ {
				if !yield(s.Ref(i)) {
					return
				}
			}
		}
	}

	panic(condition.NewTypeConstraint(c, "sequence"))
}

// Build creates a sequence of kind k from elements.
func Build(k Kind, elements iter.Seq[cell.I]) cell.I {
	switch k {
	case List:
		return list.New(slices.Collect(elements)...)
	case Vector:
		return vec.New(slices.Collect(elements)...)
	case String:
		var rs []rune
		for e := range elements {
			rs = append(rs, char.To(e).Rune())
		}

		return str.Runes(rs)
	}

	panic(condition.NewInternalCompiler("unknown sequence kind"))
}

// Length returns the number of elements in c.
func Length(c cell.I) int {
	switch KindOf(c) {
	case Vector:
		return vec.To(c).Len()
	case String:
		return str.To(c).Len()
	}

	return list.Length(c)
}

// Elt returns the element of c at index i.
func Elt(c cell.I, i int) cell.I {
	switch KindOf(c) {
	case Vector:
		return vec.To(c).Ref(i)
	case String:
		return str.To(c).Ref(i)
	}

	return list.Ref(c, i)
}

// SetElt replaces the element of c at index i with v.
func SetElt(c cell.I, i int, v cell.I) {
	switch KindOf(c) {
	case Vector:
		vec.To(c).Set(i, v)
	case String:
		str.To(c).Set(i, v)
	default:
		list.Set(c, i, v)
	}
}

// Append returns a new sequence, of the same kind as a, with the
// elements of a followed by the elements of b.
func Append(a, b cell.I) cell.I {
	k := KindOf(a)
	second := All(b)

	return Build(k, func(yield func(cell.I) bool) {
		for e := range All(a) {
			if !yield(e) {
				return
			}
		}

		for e := range second {
			if !yield(e) {
				return
			}
		}
	})
}

// Reverse returns a new sequence of the same kind with c's elements reversed.
func Reverse(c cell.I) cell.I {
	es := slices.Collect(All(c))
	slices.Reverse(es)

	return Build(KindOf(c), slices.Values(es))
}

// Fill replaces every element of c with v.
func Fill(c, v cell.I) {
	switch KindOf(c) {
	case Vector:
		vec.To(c).Fill(v)
	case String:
		str.To(c).Fill(v)
	default:
		list.Fill(c, v)
	}
}

// Copy returns a shallow copy of the sequence c.
func Copy(c cell.I) cell.I {
	return Build(KindOf(c), All(c))
}

// Coerce converts c to a sequence of kind k. A sequence already of kind k
// is returned as is. A symbol other than nil, or a character, can be
// coerced to a string.
func Coerce(c cell.I, k Kind) cell.I {
	if k == String {
		switch {
		case sym.Is(c) && c != list.Null:
			return str.New(sym.To(c).String())
		case char.Is(c):
			return str.Runes([]rune{char.To(c).Rune()})
		}
	}

	if KindOf(c) == k {
		return c
	}

	return Build(k, All(c))
}
