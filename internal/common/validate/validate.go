// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
)

// Failure creates the condition raised when a check fails.
type Failure func(msg string) *condition.T

// Variadic returns up to max elements of actual and whatever follows them.
// It panics if actual has fewer than min elements or is not a list.
func Variadic(fail Failure, actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == list.Null {
			if i < min {
				s := Count(min, "argument", "s")
				panic(fail(fmt.Sprintf("expected %s, passed %d", s, i)))
			}

			break
		}

		if !pair.Is(actual) {
			panic(fail("dotted argument list"))
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed returns the elements of actual. It panics unless actual is a
// proper list with between min and max elements.
func Fixed(fail Failure, actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(fail, actual, min, max)
	if rest != list.Null {
		if !list.Proper(rest) {
			panic(fail("dotted argument list"))
		}

		s := Count(max, "argument", "s")
		n := len(expected) + list.Length(rest)

		panic(fail(fmt.Sprintf("expected %s, passed %d", s, n)))
	}

	return expected
}

// Count returns n and label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
