// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells
// and terminated by nil.
package list

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

// Null is the empty list.
var Null cell.I = sym.Nil //nolint:gochecknoglobals

// Append appends each element in elements to list.
// If list is Null, a new list is created.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Append(start cell.I, elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return start
	}

	if start == Null {
		start = pair.Cons(elements[0], Null)
		elements = elements[1:]
	}

	var end cell.I
	for l := start; l != Null; l = pair.Cdr(l) {
		end = l
	}

	for _, e := range elements {
		p := pair.Cons(e, Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Join creates a new list with every element from every list in lists.
// A non-pair where a pair is expected will cause a panic.
// All lists must be non-circular.
func Join(lists ...cell.I) cell.I {
	var elements []cell.I

	for _, l := range lists {
		for ; l != Null; l = pair.Cdr(l) {
			elements = append(elements, pair.Car(l))
		}
	}

	return New(elements...)
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(l cell.I) int {
	length := 0

	for ; l != Null; l = pair.Cdr(l) {
		length++
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Dotted(Null, elements...)
}

// Dotted creates a new list composed of elements and terminated by tail.
func Dotted(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Proper returns true if c is a nil-terminated list.
// The list must be non-circular.
func Proper(c cell.I) bool {
	for pair.Is(c) {
		c = pair.Cdr(c)
	}

	return c == Null
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(l cell.I) cell.I {
	reversed := Null

	for ; l != Null; l = pair.Cdr(l) {
		reversed = pair.Cons(pair.Car(l), reversed)
	}

	return reversed
}

// Split returns the elements of the possibly dotted list c and the
// value that terminates it. The tail is Null for a proper list.
func Split(c cell.I) ([]cell.I, cell.I) {
	var elements []cell.I

	for pair.Is(c) {
		elements = append(elements, pair.Car(c))

		c = pair.Cdr(c)
	}

	return elements, c
}

// Nth returns the element at index in list, or Null if list is too short.
// A negative index causes a panic.
func Nth(l cell.I, index int) cell.I {
	return pair.Car(NthCdr(l, index))
}

// NthCdr returns the sublist of list starting at element index, or Null.
// A negative index causes a panic.
func NthCdr(l cell.I, index int) cell.I {
	if index < 0 {
		panic(condition.NewRangeConstraint(num.Int(int64(index)), num.Int(0), Null))
	}

	for ; l != Null && index > 0; index-- {
		l = pair.Cdr(l)
	}

	return l
}

// Ref returns the element at index in list.
// An index outside the list causes a panic.
func Ref(l cell.I, index int) cell.I {
	return pair.Car(cons(l, index))
}

// Set replaces the element at index in list with v.
// An index outside the list causes a panic.
func Set(l cell.I, index int, v cell.I) {
	pair.SetCar(cons(l, index), v)
}

// Fill replaces every element of list with v.
func Fill(l cell.I, v cell.I) {
	for ; l != Null; l = pair.Cdr(l) {
		pair.SetCar(l, v)
	}
}

func cons(l cell.I, index int) cell.I {
	length := Length(l)

	if index < 0 || index >= length {
		panic(condition.NewRangeConstraint(
			num.Int(int64(index)),
			num.Int(0),
			num.Int(int64(length-1)),
		))
	}

	return NthCdr(l, index)
}
