// Released under an MIT license. See LICENSE.

// Package compiler translates forms into abstract syntax trees.
//
// Compilation resolves every symbol against the lexical environment and
// the global declarations, expands macros and checks the shape of the
// special forms body, if, lambda, quote and unwind-protect.
package compiler

import (
	"log/slog"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/struct/binding"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/common/validate"
	"github.com/michaelmacinnis/slxi/internal/engine/ast"
	"github.com/michaelmacinnis/slxi/internal/engine/lexenv"
)

// T (compiler) holds the configuration for compiling forms. A T can be
// used by multiple goroutines at once as long as its bindings are not
// also being modified.
type T struct {
	bindings *binding.T
	expander Expander
	logger   *slog.Logger
}

type compiler = T

// New creates a compiler configured by opts.
func New(opts ...Option) *T {
	c := &compiler{
		expander: Functions,
		logger:   discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles form in an empty lexical environment.
func Compile(form cell.I) (ast.Node, error) {
	return New().Compile(form, lexenv.Root())
}

// CompileIn compiles form in the lexical environment env.
func CompileIn(form cell.I, env *lexenv.T) (ast.Node, error) {
	return New().Compile(form, env)
}

// Compile compiles form in the lexical environment env.
// An empty environment is used when env is nil.
func (c *compiler) Compile(form cell.I, env *lexenv.T) (n ast.Node, err error) {
	defer condition.Recover(&err)

	if env == nil {
		env = lexenv.Root()
	}

	ctx := context{compiler: c}.in(env).with(form)

	return ctx.compile(form), nil
}

func (ctx context) compile(form cell.I) ast.Node {
	if form == nil {
		panic(condition.NewInternalCompiler("compiling an unbound value"))
	}

	if ctx.env == nil {
		panic(condition.NewInternalCompiler("no lexical environment"))
	}

	ctx = ctx.with(form)

	if s, ok := form.(*sym.T); ok {
		return ctx.symbol(s)
	}

	if !pair.Is(form) {
		return ast.NewConstant(form)
	}

	head := pair.Car(form)

	s, ok := head.(*sym.T)
	if !ok {
		return ctx.call(form)
	}

	switch s {
	case sym.Body:
		return ctx.body(pair.Cdr(form))
	case sym.If:
		return ctx.conditional(form)
	case sym.Lambda:
		return ctx.lambda(form)
	case sym.Quote:
		return ctx.quote(form)
	case sym.UnwindProtect:
		return ctx.unwindProtect(form)
	}

	if m, ok := ctx.macro(s); ok {
		return ctx.expandMacro(m, form)
	}

	return ctx.call(form)
}

func (ctx context) symbol(s *sym.T) ast.Node {
	if v, ok := ctx.env.Lookup(s); ok {
		switch v.Kind {
		case kind.Static:
			return ast.NewLocalStatic(v)
		case kind.Dynamic:
			return ast.NewLocalDynamic(s)
		case kind.Constant:
			return ast.NewConstant(v.Value)
		case kind.Macro:
			return ctx.symbolMacro(s).compile(v.Value)
		}
	}

	k, ok := s.Declared()
	if !ok {
		return ast.NewUnresolved(s)
	}

	switch k {
	case kind.Static:
		return ast.NewGlobalStatic(s)
	case kind.Dynamic:
		return ast.NewGlobalDynamic(s)
	case kind.Constant:
		return ast.NewConstant(ctx.global(s))
	case kind.Macro:
		return ctx.symbolMacro(s).compile(ctx.global(s))
	}

	panic(condition.NewInternalCompiler("unknown variable kind: " + k.String()))
}

// global returns the current global value of s.
func (ctx context) global(s *sym.T) cell.I {
	return ctx.bindings.Value(s)
}

// macro returns the macro bound to s, checking the lexical environment
// before the global declarations.
func (ctx context) macro(s *sym.T) (cell.I, bool) {
	if v, ok := ctx.env.Lookup(s); ok && v.Kind == kind.Macro {
		return v.Value, true
	}

	if k, ok := s.Declared(); ok && k == kind.Macro {
		return ctx.global(s), true
	}

	return nil, false
}

func (ctx context) expandMacro(m, form cell.I) ast.Node {
	expanded, err := ctx.expander.Expand(m, form)
	if err != nil {
		ctx.raise(err)
	}

	if expanded == nil {
		panic(ctx.fail("macro expansion produced no form"))
	}

	ctx.logger.Debug(
		"expanded macro",
		"form", literal.String(form),
		"expansion", literal.String(expanded),
	)

	return ctx.compile(expanded)
}

func (ctx context) call(form cell.I) ast.Node {
	function := ctx.compile(pair.Car(form))

	elems, tail := list.Split(pair.Cdr(form))

	args := ctx.each(elems)

	var rest ast.Node
	if tail != list.Null {
		rest = ctx.compile(tail)
	}

	return ast.NewCall(function, args, rest)
}

func (ctx context) body(forms cell.I) *ast.Body {
	return ast.NewBody(ctx.each(ctx.proper(forms))...)
}

func (ctx context) conditional(form cell.I) ast.Node {
	v := validate.Fixed(ctx.fail, pair.Cdr(form), 3, 3)

	return ast.NewIf(ctx.compile(v[0]), ctx.compile(v[1]), ctx.compile(v[2]))
}

func (ctx context) quote(form cell.I) ast.Node {
	v := validate.Fixed(ctx.fail, pair.Cdr(form), 1, 1)

	return ast.NewConstant(v[0])
}

func (ctx context) unwindProtect(form cell.I) ast.Node {
	v, cleanup := validate.Variadic(ctx.fail, pair.Cdr(form), 1, 1)

	protected := ctx.compile(v[0])

	return ast.NewUnwindProtect(protected, ctx.each(ctx.proper(cleanup))...)
}

func (ctx context) each(forms []cell.I) []ast.Node {
	nodes := make([]ast.Node, 0, len(forms))

	for _, f := range forms {
		nodes = append(nodes, ctx.compile(f))
	}

	return nodes
}

// proper returns the elements of c. It panics if c is not a proper list.
func (ctx context) proper(c cell.I) []cell.I {
	elems, tail := list.Split(c)
	if tail != list.Null {
		ctx.syntax("dotted list")
	}

	return elems
}
