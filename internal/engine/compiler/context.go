// Released under an MIT license. See LICENSE.

package compiler

import (
	"errors"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/common/validate"
	"github.com/michaelmacinnis/slxi/internal/engine/lexenv"
)

// context is the state of a single compilation. Each recursive step
// gets its own copy.
type context struct {
	*compiler

	env  *lexenv.T
	fail validate.Failure
	form cell.I // The innermost form being compiled.

	expanding *expansion // Symbol macros being expanded.
}

type expansion struct {
	name *sym.T
	next *expansion
}

func (ctx context) in(env *lexenv.T) context {
	ctx.env = env

	return ctx
}

func (ctx context) with(form cell.I) context {
	ctx.form = form
	ctx.fail = func(msg string) *condition.T {
		return condition.NewSyntax(form, msg)
	}

	return ctx
}

func (ctx context) symbolMacro(name *sym.T) context {
	for e := ctx.expanding; e != nil; e = e.next {
		if e.name == name {
			panic(ctx.fail("recursive symbol macro: " + name.Literal()))
		}
	}

	ctx.expanding = &expansion{name: name, next: ctx.expanding}

	return ctx
}

// raise panics with err as a condition. Conditions without a form get
// the current form. Other errors become syntax errors.
func (ctx context) raise(err error) {
	var c *condition.T
	if !errors.As(err, &c) {
		panic(ctx.fail(err.Error()))
	}

	if c.Form == nil {
		c.Form = ctx.form
	}

	panic(c)
}

func (ctx context) syntax(msg string) {
	panic(ctx.fail(msg))
}
