// Released under an MIT license. See LICENSE.

// Package kind enumerates the ways a variable can be declared.
package kind

// T (kind) is a variable declaration kind.
type T int

// Variable kinds.
const (
	Static T = iota
	Dynamic
	Constant
	Macro
)

// Inlined returns true if variables of kind k have a compile-time value.
func (k T) Inlined() bool {
	return k == Constant || k == Macro
}

func (k T) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Constant:
		return "constant"
	case Macro:
		return "macro"
	}

	return "unknown"
}
