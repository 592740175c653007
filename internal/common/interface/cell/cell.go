// Released under an MIT license. See LICENSE.

// Package cell defines the interface satisfied by every slxi value.
package cell

// I (cell) is a runtime value. Identity (eq) is pointer identity on the
// value; Equal is structural equality (equal).
type I interface {
	Equal(c I) bool
	Name() string
}
