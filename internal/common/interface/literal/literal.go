// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values with a printed representation.
package literal

import (
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
)

// I (literal) is any value that can be printed.
type I interface {
	Literal() string
}

// String returns the printed representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return "#<unbound>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
