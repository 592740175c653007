package compiler_test

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/str"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/engine/ast"
	"github.com/michaelmacinnis/slxi/internal/engine/compiler"
)

func TestLambdaParameters(t *testing.T) {
	f := s("lambda-f")
	g := s("lambda-g")
	a := s("lambda-a")
	b := s("lambda-b")
	c := s("lambda-c")

	form := list.New(
		sym.Lambda, f,
		list.New(a, sym.Key, list.New(b, a), sym.Aux, list.New(c, b)),
		str.New("Documentation."),
		list.New(sym.Declare, list.New(s("dynamic"), a)),
		list.New(g, a, b, c),
	)

	n, ok := compile(t, form).(*ast.Lambda)
	if !ok {
		t.Fatal("expected a lambda node")
	}

	if n.Name != f || n.Doc != "Documentation." {
		t.Fatalf("unexpected name or documentation: %s %q", n.Name, n.Doc)
	}

	if len(n.Required) != 1 || n.Required[0].Kind != kind.Dynamic {
		t.Fatal("expected a single dynamic required parameter")
	}

	if !n.HasKeys || len(n.Keys) != 1 || n.Keys[0].Keyword != sym.Keyword("lambda-b") {
		t.Fatal("expected a single key parameter")
	}

	if _, ok := n.Keys[0].Default.(*ast.LocalDynamic); !ok {
		t.Fatalf("expected the key default to refer to a, got %s", n.Keys[0].Default)
	}

	if r, ok := n.Aux[0].Init.(*ast.LocalStatic); !ok || r.Var != n.Keys[0].Var {
		t.Fatalf("expected the aux init to refer to b, got %s", n.Aux[0].Init)
	}

	if len(n.Body.Forms) != 1 {
		t.Fatalf("expected one body form, got %d", len(n.Body.Forms))
	}

	call := n.Body.Forms[0].(*ast.Call)

	if _, ok := call.Args[0].(*ast.LocalDynamic); !ok {
		t.Fatalf("expected a dynamic reference to a, got %s", call.Args[0])
	}

	if r, ok := call.Args[1].(*ast.LocalStatic); !ok || r.Var != n.Keys[0].Var {
		t.Fatalf("expected a reference to b, got %s", call.Args[1])
	}

	if r, ok := call.Args[2].(*ast.LocalStatic); !ok || r.Var != n.Aux[0].Var {
		t.Fatalf("expected a reference to c, got %s", call.Args[2])
	}

	check(t, n,
		"(lambda lambda-f (lambda-a &key ((:lambda-b lambda-b) (local-dynamic lambda-a)) "+
			"&aux (lambda-c (local lambda-b))) "+
			"(body (call (unresolved lambda-g) (local-dynamic lambda-a) (local lambda-b) (local lambda-c))))",
	)
}

func TestLambdaScope(t *testing.T) {
	x := s("scope-x")

	n := compile(t, list.New(sym.Lambda, list.New(x), x))
	if _, ok := n.(*ast.Lambda).Body.Forms[0].(*ast.LocalStatic); !ok {
		t.Fatal("parameters should be visible in the body")
	}

	// Outside the lambda the parameter is not visible.
	n = compile(t, list.New(s("scope-f"), list.New(sym.Lambda, list.New(x), x), x))
	if _, ok := n.(*ast.Call).Args[1].(*ast.Unresolved); !ok {
		t.Fatal("parameters should not be visible outside the lambda")
	}
}

func TestLambdaDeclarations(t *testing.T) {
	x := s("decl-x")
	k := s("decl-k")
	m := s("decl-m")

	form := list.New(
		sym.Lambda, list.New(x),
		list.New(sym.Declare,
			list.New(s("static"), x),
			list.New(s("constant"), k, num.Int(7)),
		),
		list.New(sym.Declare, list.New(s("macro"), m, k)),
		x, k, m,
	)

	check(t, compile(t, form), "(lambda (decl-x) (body (local decl-x) (constant 7) (constant 7)))")
}

func TestLambdaDocstringOnly(t *testing.T) {
	n := compile(t, list.New(sym.Lambda, list.Null, str.New("value")))

	l := n.(*ast.Lambda)
	if l.Doc != "" || len(l.Body.Forms) != 1 {
		t.Fatal("a lone string is the body, not documentation")
	}

	if l.Name != nil {
		t.Fatal("expected an anonymous lambda")
	}
}

func TestLambdaErrors(t *testing.T) {
	x := s("error-x")
	y := s("error-y")

	syntax(t, list.New(sym.Lambda), "lambda list expected")
	syntax(t, list.New(sym.Lambda, num.Int(5)), "lambda list expected")
	syntax(t, list.New(sym.Lambda, list.New(x, x)), "duplicate argument name")
	syntax(t, list.New(sym.Lambda, list.Dotted(y, x)), "dotted lambda list")
	syntax(t, list.New(sym.Lambda, list.Null, list.New(sym.Declare, list.New(s("bogus"), x))), "unknown declaration")
	syntax(t, list.New(sym.Lambda, list.Null, list.New(sym.Declare, list.New(s("constant"), x))), "expected 2 arguments")

	_, err := compiler.Compile(list.New(
		sym.Lambda, list.New(x),
		list.New(sym.Declare, list.New(s("dynamic"), x), list.New(s("static"), x)),
	))
	if !condition.Is(err, condition.Redeclaration) {
		t.Fatalf("expected redeclaration, got %v", err)
	}

	_, err = compiler.Compile(list.New(
		sym.Lambda, list.Null,
		list.New(sym.Declare, list.New(s("static"), s("error-undefined"))),
	))
	if !condition.Is(err, condition.UndefinedDeclaration) {
		t.Fatalf("expected undefined declaration, got %v", err)
	}
}

func TestLambdaGlobalDynamicParameter(t *testing.T) {
	x := s("global-dynamic-x")
	x.Declare(kind.Dynamic)

	n := compile(t, list.New(sym.Lambda, list.New(x), x))

	check(t, n, "(lambda (global-dynamic-x) (body (local-dynamic global-dynamic-x)))")

	if n.(*ast.Lambda).Required[0].Kind != kind.Dynamic {
		t.Fatal("expected the parameter to bind dynamically")
	}
}

func TestLambdaConstantParameter(t *testing.T) {
	c := s("global-constant-c")
	c.Defconstant(num.Int(7))

	form := list.New(sym.Lambda, list.New(c), c)

	_, err := compiler.Compile(form)
	if !condition.Is(err, condition.ConstantModification) {
		t.Fatalf("expected constant modification, got %v", err)
	}

	var cond *condition.T
	if errors.As(err, &cond) && cond.Form != form {
		t.Fatalf("expected the lambda form, got %v", cond.Form)
	}
}
