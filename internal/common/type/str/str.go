// Released under an MIT license. See LICENSE.

// Package str provides slxi's string type. Strings are mutable, fixed-length
// buffers of characters.
package str

import (
	"slices"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/type/char"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
)

const name = "string"

// T (str) is a buffer of characters.
type T struct {
	runes []rune
}

type str = T

// New creates a new str cell with the characters in v.
func New(v string) cell.I {
	return &str{runes: []rune(v)}
}

// Runes creates a new str cell with a copy of rs.
func Runes(rs []rune) cell.I {
	return &str{runes: slices.Clone(rs)}
}

// Make creates a new str cell of n copies of r.
func Make(n int, r rune) cell.I {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = r
	}

	return &str{runes: rs}
}

// Equal returns true if the cell c holds the same characters.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && slices.Equal(s.runes, o.runes)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(s.runes))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(s.runes)
}

// Methods specific to str.

// Len returns the number of characters in s.
func (s *str) Len() int {
	return len(s.runes)
}

// Ref returns the character at index i.
func (s *str) Ref(i int) cell.I {
	s.check(i)

	return char.New(s.runes[i])
}

// Set replaces the character at index i with c.
func (s *str) Set(i int, c cell.I) {
	s.check(i)

	s.runes[i] = char.To(c).Rune()
}

// Fill replaces every character in s with c.
func (s *str) Fill(c cell.I) {
	r := char.To(c).Rune()

	for i := range s.runes {
		s.runes[i] = r
	}
}

func (s *str) check(i int) {
	if i < 0 || i >= len(s.runes) {
		panic(condition.NewRangeConstraint(
			num.Int(int64(i)),
			num.Int(0),
			num.Int(int64(len(s.runes)-1)),
		))
	}
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(condition.NewTypeConstraint(c, name))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)
}
