// Released under an MIT license. See LICENSE.

package compiler

import (
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/fn"
)

// Expander expands macro calls. Expand is passed the macro's value and
// the entire unevaluated form and returns the form to compile instead.
type Expander interface {
	Expand(macro, form cell.I) (cell.I, error)
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(macro, form cell.I) (cell.I, error)

// Expand calls f(macro, form).
func (f ExpanderFunc) Expand(macro, form cell.I) (cell.I, error) {
	return f(macro, form)
}

// Functions expands macros whose values are functions by calling the
// function with the form.
var Functions Expander = ExpanderFunc(callMacro) //nolint:gochecknoglobals

func callMacro(macro, form cell.I) (cell.I, error) {
	return fn.To(macro).Call(form), nil
}
