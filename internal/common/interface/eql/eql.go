// Released under an MIT license. See LICENSE.

// Package eql defines the interface for values with an eql relation wider than identity.
package eql

import (
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
)

// I (eql) is implemented by numbers and characters.
type I interface {
	Eql(c cell.I) bool
}

// Value returns true if a and b are eql.
func Value(a, b cell.I) bool {
	if a == b {
		return true
	}

	if e, ok := a.(I); ok {
		return e.Eql(b)
	}

	return false
}
