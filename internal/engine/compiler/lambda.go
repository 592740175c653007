// Released under an MIT license. See LICENSE.

package compiler

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
	"github.com/michaelmacinnis/slxi/internal/common/type/str"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/common/validate"
	"github.com/michaelmacinnis/slxi/internal/engine/ast"
	"github.com/michaelmacinnis/slxi/internal/engine/lambdalist"
	"github.com/michaelmacinnis/slxi/internal/engine/lexenv"
)

// Declaration specifiers.
//
//nolint:gochecknoglobals
var (
	constant = sym.True.Intern("constant")
	dynamic  = sym.True.Intern("dynamic")
	macro    = sym.True.Intern("macro")
	static   = sym.True.Intern("static")
)

// lambda compiles (lambda [name] lambda-list [doc] (declare ...)* form*).
func (ctx context) lambda(form cell.I) ast.Node {
	rest := pair.Cdr(form)

	var name *sym.T
	if s, ok := pair.Car(rest).(*sym.T); ok && s != sym.Nil {
		name = s
		rest = pair.Cdr(rest)
	}

	if !pair.Is(rest) {
		ctx.syntax("lambda list expected")
	}

	ll := pair.Car(rest)
	if ll != list.Null && !pair.Is(ll) {
		ctx.syntax("lambda list expected")
	}

	params, err := lambdalist.Parse(ll)
	if err != nil {
		ctx.raise(err)
	}

	doc, decls, forms := ctx.lambdaBody(ctx.proper(pair.Cdr(rest)))

	// Dynamic declarations must be in place before the parameters are
	// bound. The others may refer to the parameters.
	var early, late []lexenv.Declaration

	for _, d := range decls {
		if d.Kind == kind.Dynamic {
			early = append(early, d)
		} else {
			late = append(late, d)
		}
	}

	env, err := ctx.env.Child(early...)
	if err != nil {
		ctx.raise(err)
	}

	inner := ctx.in(env)

	n := &ast.Lambda{
		Name:           name,
		Doc:            doc,
		HasKeys:        params.HasKeys,
		AllowOtherKeys: params.AllowOtherKeys,
	}

	for _, v := range params.Required {
		n.Required = append(n.Required, inner.define(v))
	}

	if params.Rest != nil {
		n.Rest = inner.define(params.Rest)
	}

	for _, k := range params.Keys {
		def := inner.compile(k.Default)

		key := &ast.Key{Keyword: k.Keyword, Var: inner.define(k.Var), Default: def}
		if k.Supplied != nil {
			key.Supplied = inner.define(k.Supplied)
		}

		n.Keys = append(n.Keys, key)
	}

	for _, a := range params.Aux {
		val := inner.compile(a.Init)

		n.Aux = append(n.Aux, &ast.Aux{Var: inner.define(a.Var), Init: val})
	}

	if err := env.Declare(late...); err != nil {
		inner.with(form).raise(err)
	}

	n.Body = inner.body(list.New(forms...))

	label := "anonymous"
	if name != nil {
		label = name.Literal()
	}

	ctx.logger.Debug(
		"compiled lambda",
		"name", label,
		"params", len(params.Vars()),
		"forms", len(forms),
	)

	return n.Validate()
}

// lambdaBody splits the forms of a lambda body into the documentation
// string, declarations and the forms to evaluate.
func (ctx context) lambdaBody(forms []cell.I) (string, []lexenv.Declaration, []cell.I) {
	doc := ""
	if len(forms) > 1 && str.Is(forms[0]) {
		doc = str.To(forms[0]).String()
		forms = forms[1:]
	}

	var decls []lexenv.Declaration

	for len(forms) > 0 && pair.Is(forms[0]) && pair.Car(forms[0]) == sym.Declare {
		for _, spec := range ctx.with(forms[0]).proper(pair.Cdr(forms[0])) {
			decls = append(decls, ctx.with(spec).declaration(spec)...)
		}

		forms = forms[1:]
	}

	return doc, decls, forms
}

func (ctx context) declaration(spec cell.I) []lexenv.Declaration {
	if !pair.Is(spec) {
		ctx.syntax("invalid declaration")
	}

	head := pair.Car(spec)

	switch head {
	case constant, macro:
		v := validate.Fixed(ctx.fail, pair.Cdr(spec), 2, 2)

		k := kind.Constant
		if head == macro {
			k = kind.Macro
		}

		return []lexenv.Declaration{{Name: ctx.name(v[0]), Kind: k, Value: v[1]}}
	case dynamic, static:
		k := kind.Dynamic
		if head == static {
			k = kind.Static
		}

		var decls []lexenv.Declaration
		for _, c := range ctx.proper(pair.Cdr(spec)) {
			decls = append(decls, lexenv.Declaration{Name: ctx.name(c), Kind: k})
		}

		return decls
	}

	ctx.syntax("unknown declaration: " + literal.String(head))

	return nil
}

func (ctx context) name(c cell.I) *sym.T {
	s, ok := c.(*sym.T)
	if !ok || s.Immutable() {
		ctx.syntax("variable name expected")
	}

	return s
}

// define binds name in the current frame. Failures carry the current form.
func (ctx context) define(name *sym.T) (v *lexenv.Var) {
	if err := condition.Catch(func() { v = ctx.env.Define(name) }); err != nil {
		ctx.raise(err)
	}

	return v
}
